package click

import (
	"context"
	"fmt"

	"tapCalc/internal/domain"
	"tapCalc/internal/ports"
)

var _ ports.IEvaluationAnalytics = (*EvaluationWriter)(nil)

const evaluationsAnalyticsFull = "default.evaluations_analytics"

// EvaluationWriter записывает вычисления в ClickHouse в формате, удобном для
// аналитики (GROUP BY operator, по сессиям, по времени и т.д.).
type EvaluationWriter struct {
	db *Client
}

// NewEvaluationWriter создаёт писатель вычислений для аналитики.
func NewEvaluationWriter(db *Client) *EvaluationWriter {
	return &EvaluationWriter{db: db}
}

// EnsureTable создаёт таблицу вычислений для аналитики в default, если её ещё нет. Вызови один раз при старте приложения.
func (w *EvaluationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			session_id String,
			operand1 Float64,
			operand2 Float64,
			operator String,
			result Float64,
			message String,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, operator)
		PARTITION BY toYYYYMM(created_at)`,
		evaluationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteEvaluation реализует ports.IEvaluationAnalytics: пишет одно вычисление в ClickHouse.
func (w *EvaluationWriter) WriteEvaluation(ctx context.Context, ev domain.Evaluation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (session_id, operand1, operand2, operator, result, message, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		evaluationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		ev.SessionID, ev.Operand1, ev.Operand2, ev.Operator, ev.Result, ev.Message, ev.Timestamp)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}
