package pg

import (
	"context"
)

const createEvaluationsTable = `
CREATE TABLE IF NOT EXISTS evaluations (
	id         SERIAL PRIMARY KEY,
	session_id VARCHAR(128) NOT NULL,
	operand1   DOUBLE PRECISION NOT NULL,
	operand2   DOUBLE PRECISION NOT NULL,
	operator   VARCHAR(10) NOT NULL,
	result     DOUBLE PRECISION NOT NULL,
	message    TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate создаёт таблицу evaluations, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createEvaluationsTable)
	return err
}
