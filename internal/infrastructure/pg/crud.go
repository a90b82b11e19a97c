package pg

import (
	"context"
	"log/slog"

	"tapCalc/internal/domain"
	"tapCalc/internal/ports"
)

var _ ports.IEvaluationRepository = (*EvaluationRepo)(nil)

// EvaluationRepo реализует ports.IEvaluationRepository для PostgreSQL.
type EvaluationRepo struct {
	db  *DB
	log *slog.Logger
}

// NewEvaluationRepo возвращает репозиторий вычислений.
func NewEvaluationRepo(db *DB, log *slog.Logger) *EvaluationRepo {
	return &EvaluationRepo{db: db, log: log}
}

// SaveEvaluation сохраняет вычисление в БД.
func (r *EvaluationRepo) SaveEvaluation(ctx context.Context, ev domain.Evaluation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO evaluations (session_id, operand1, operand2, operator, result, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ev.SessionID, ev.Operand1, ev.Operand2, ev.Operator, ev.Result, ev.Message, ev.Timestamp)
	if err != nil {
		r.log.Debug("SaveEvaluation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает историю вычислений из БД (последние сначала).
func (r *EvaluationRepo) GetHistory(ctx context.Context) ([]domain.Evaluation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, operand1, operand2, operator, result, message, created_at
		 FROM evaluations ORDER BY created_at DESC`)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.Evaluation
	for rows.Next() {
		var ev domain.Evaluation
		err := rows.Scan(&ev.ID, &ev.SessionID, &ev.Operand1, &ev.Operand2, &ev.Operator, &ev.Result, &ev.Message, &ev.Timestamp)
		if err != nil {
			return nil, err
		}
		list = append(list, ev)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *EvaluationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
