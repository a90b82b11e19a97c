package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapCalc/internal/domain"
	"tapCalc/internal/infrastructure/click"
	"tapCalc/tests/integration/testutil"
)

// clickContainer — контейнер ClickHouse, инициализируется в TestMain.
var clickContainer *testutil.ClickHouseContainer

// setupClickWriter подключается к тестовому ClickHouse и создаёт таблицу.
func setupClickWriter(t *testing.T) *click.EvaluationWriter {
	t.Helper()

	ctx := context.Background()

	client, err := click.New(&click.Config{
		Host:     clickContainer.Host,
		Port:     clickContainer.Port,
		Database: clickContainer.Database,
		Username: clickContainer.User,
		Password: clickContainer.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")

	writer := click.NewEvaluationWriter(client)

	err = writer.EnsureTable(ctx)
	require.NoError(t, err, "не удалось создать таблицу")

	// Очищаем таблицу перед тестом
	_, err = client.DB().ExecContext(ctx, "TRUNCATE TABLE default.evaluations_analytics")
	require.NoError(t, err, "не удалось очистить таблицу")

	t.Cleanup(func() {
		client.Close()
	})

	return writer
}

// =============================================================================
// Тесты ClickHouse writer
// =============================================================================

func TestClickWriter_WriteEvaluation(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer := setupClickWriter(t)
	ctx := context.Background()

	ev := domain.Evaluation{
		SessionID: "s1",
		Operand1:  12,
		Operand2:  5,
		Operator:  "+",
		Result:    17,
		Timestamp: time.Now(),
	}

	err := writer.WriteEvaluation(ctx, ev)
	assert.NoError(t, err, "WriteEvaluation должен успешно записать")
}

func TestClickWriter_EnsureTableIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer := setupClickWriter(t)

	// Повторный вызов не должен падать (CREATE TABLE IF NOT EXISTS).
	assert.NoError(t, writer.EnsureTable(context.Background()))
}
