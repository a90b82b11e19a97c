package ports

//go:generate mockgen -source=sessions.go -destination=../mocks/sessions_mock.go -package=mocks

import (
	"context"

	"tapCalc/internal/engine"
)

// ISessionStore — контракт хранилища состояний движка по идентификатору
// сессии. Сериализация движку не видна — он работает со значениями State.
type ISessionStore interface {
	Get(ctx context.Context, sessionID string) (state engine.State, found bool, err error)
	Set(ctx context.Context, sessionID string, state engine.State) error
	Delete(ctx context.Context, sessionID string) error
}
