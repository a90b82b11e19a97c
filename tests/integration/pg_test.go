package integration

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapCalc/internal/domain"
	"tapCalc/internal/infrastructure/pg"
	"tapCalc/tests/integration/testutil"
)

// pgContainer — контейнер PostgreSQL, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var pgContainer *testutil.PostgresContainer

// newTestLogger создаёт логгер для тестов.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// setupPgDB подключается к тестовой БД, прогоняет миграцию и чистит таблицу.
func setupPgDB(t *testing.T) *pg.DB {
	t.Helper()

	db, err := pg.New(&pg.Config{
		Host:     pgContainer.Host,
		Port:     pgContainer.Port,
		User:     pgContainer.User,
		Password: pgContainer.Password,
		DBName:   pgContainer.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "не удалось подключиться к PostgreSQL")

	require.NoError(t, pg.Migrate(context.Background(), db), "миграция не прошла")

	// Очищаем таблицу перед каждым тестом
	conn, err := sql.Open("postgres", pgContainer.DSN())
	require.NoError(t, err)
	_, err = conn.Exec("TRUNCATE TABLE evaluations RESTART IDENTITY")
	require.NoError(t, err, "не удалось очистить таблицу evaluations")
	conn.Close()

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// =============================================================================
// Тесты PostgreSQL репозитория
// =============================================================================

func TestPgRepo_SaveEvaluation(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewEvaluationRepo(db, newTestLogger())
	ctx := context.Background()

	ev := domain.Evaluation{
		SessionID: "s1",
		Operand1:  12,
		Operand2:  5,
		Operator:  "+",
		Result:    17,
		Timestamp: time.Now(),
	}

	err := repo.SaveEvaluation(ctx, ev)
	require.NoError(t, err, "SaveEvaluation должен успешно сохранить")

	// Проверяем напрямую в БД
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM evaluations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "в таблице должна быть 1 запись")
}

func TestPgRepo_SaveEvaluation_ZeroDivisor(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewEvaluationRepo(db, newTestLogger())
	ctx := context.Background()

	// Неудачное вычисление тоже попадает в историю — с диагностикой.
	ev := domain.Evaluation{
		SessionID: "s1",
		Operand1:  8,
		Operand2:  0,
		Operator:  "/",
		Result:    0,
		Message:   domain.MsgDivisionByZero,
		Timestamp: time.Now(),
	}
	require.NoError(t, repo.SaveEvaluation(ctx, ev))

	history, err := repo.GetHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.MsgDivisionByZero, history[0].Message)
}

func TestPgRepo_GetHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewEvaluationRepo(db, newTestLogger())
	ctx := context.Background()

	evs := []domain.Evaluation{
		{SessionID: "s1", Operand1: 1, Operand2: 1, Operator: "+", Result: 2, Timestamp: time.Now().Add(-2 * time.Second)},
		{SessionID: "s1", Operand1: 2, Operand2: 2, Operator: "+", Result: 4, Timestamp: time.Now().Add(-1 * time.Second)},
		{SessionID: "s2", Operand1: 3, Operand2: 3, Operator: "+", Result: 6, Timestamp: time.Now()},
	}

	for _, ev := range evs {
		require.NoError(t, repo.SaveEvaluation(ctx, ev))
	}

	history, err := repo.GetHistory(ctx)
	require.NoError(t, err, "GetHistory должен успешно вернуть данные")

	assert.Len(t, history, 3, "должно быть 3 записи")

	// Сортировка: последние сначала.
	assert.Equal(t, 6.0, history[0].Result, "первая запись — самая новая")
	assert.Equal(t, 4.0, history[1].Result)
	assert.Equal(t, 2.0, history[2].Result, "последняя запись — самая старая")

	assert.NotZero(t, history[0].ID, "ID должен быть назначен")
}

func TestPgRepo_GetHistory_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewEvaluationRepo(db, newTestLogger())
	ctx := context.Background()

	history, err := repo.GetHistory(ctx)
	require.NoError(t, err, "GetHistory на пустой таблице не должен возвращать ошибку")
	assert.Empty(t, history, "история должна быть пустой")
}

func TestPgRepo_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db := setupPgDB(t)
	repo := pg.NewEvaluationRepo(db, newTestLogger())

	assert.NoError(t, repo.Ping(context.Background()))
}
