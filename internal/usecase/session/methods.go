package session

import (
	"context"
	"encoding/json"
	"fmt"

	"tapCalc/internal/domain"
	"tapCalc/internal/engine"
)

// Press применяет одно нажатие к сессии: грузит состояние (нет — свежее),
// прогоняет через движок, сохраняет обратно. Завершённое вычисление уходит
// в БД и публикуется в брокер; ошибка брокера нажатие не валит.
func (u *UseCase) Press(ctx context.Context, sessionID, label string) (engine.State, error) {
	before, found, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return engine.State{}, fmt.Errorf("session get: %w", err)
	}
	if !found {
		before = engine.NewState()
	}

	ev := engine.MapLabel(label)
	after := engine.Apply(before, ev)
	keyPressesTotal.WithLabelValues(kindLabel(ev.Kind)).Inc()

	if err := u.sessions.Set(ctx, sessionID, after); err != nil {
		return engine.State{}, fmt.Errorf("session set: %w", err)
	}

	rec, ok := completedEvaluation(sessionID, before, ev, after)
	if !ok {
		return after, nil
	}
	if after.HasError {
		zeroDivisorsTotal.Inc()
	}

	if err := u.repo.SaveEvaluation(ctx, rec); err != nil {
		return engine.State{}, fmt.Errorf("save evaluation: %w", err)
	}
	u.log.Info("evaluation saved",
		"session", sessionID,
		"operator", rec.Operator,
		"result", rec.Result,
		"message", rec.Message,
	)

	value, err := json.Marshal(rec)
	if err != nil {
		return engine.State{}, err
	}
	if err := u.broker.Send(ctx, []byte(sessionID), value); err != nil {
		u.log.Warn("broker send", "session", sessionID, "error", err)
	} else {
		u.log.Info("evaluation published", "session", sessionID, "result", rec.Result)
	}

	return after, nil
}

// Display возвращает текущее состояние сессии; неизвестная сессия — свежее
// состояние (дисплей "0").
func (u *UseCase) Display(ctx context.Context, sessionID string) (engine.State, error) {
	state, found, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return engine.State{}, fmt.Errorf("session get: %w", err)
	}
	if !found {
		return engine.NewState(), nil
	}
	return state, nil
}

// Forget удаляет сохранённое состояние сессии.
func (u *UseCase) Forget(ctx context.Context, sessionID string) error {
	return u.sessions.Delete(ctx, sessionID)
}

// History — история завершённых вычислений (обвязка над репозиторием).
func (u *UseCase) History(ctx context.Context) ([]domain.Evaluation, error) {
	return u.repo.GetHistory(ctx)
}

// HandleEvaluationEvent вызывается консьюмером при получении сообщения из
// топика вычислений (часть ICalculatorUseCase): пишет запись в аналитику.
func (u *UseCase) HandleEvaluationEvent(ctx context.Context, ev domain.Evaluation) error {
	if err := u.analytics.WriteEvaluation(ctx, ev); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("evaluation stored to click",
		"session", ev.SessionID,
		"operand1", ev.Operand1,
		"operator", ev.Operator,
		"operand2", ev.Operand2,
		"result", ev.Result,
	)

	return nil
}
