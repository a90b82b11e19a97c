package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"tapCalc/internal/domain"
	"tapCalc/internal/engine"
)

// ICalculatorUseCase — контракт бизнес-логики: нажатия клавиш по сессиям,
// история вычислений, обработка событий из Kafka.
type ICalculatorUseCase interface {
	Press(ctx context.Context, sessionID, label string) (engine.State, error)
	Display(ctx context.Context, sessionID string) (engine.State, error)
	Forget(ctx context.Context, sessionID string) error
	History(ctx context.Context) ([]domain.Evaluation, error)
	HandleEvaluationEvent(ctx context.Context, ev domain.Evaluation) error
}
