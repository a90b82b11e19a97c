package session

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tapCalc/internal/domain"
	"tapCalc/internal/engine"
	"tapCalc/internal/ports"
)

var (
	keyPressesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_key_presses_total",
			Help: "Total number of accepted key press events by kind",
		},
		[]string{"kind"},
	)

	zeroDivisorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "calc_zero_divisor_errors_total",
			Help: "Total number of evaluations latched on a zero divisor",
		},
	)
)

// kindLabel — имя вида события для метрик.
func kindLabel(k engine.Kind) string {
	switch k {
	case engine.KindDigit:
		return "digit"
	case engine.KindDecimal:
		return "decimal"
	case engine.KindOperator:
		return "operator"
	case engine.KindEquals:
		return "equals"
	case engine.KindClear:
		return "clear"
	case engine.KindBackspace:
		return "backspace"
	default:
		return "noop"
	}
}

// UseCase — бизнес-логика сессий калькулятора: нажатие → движок →
// хранилище сессий, завершённые вычисления → БД и брокер.
type UseCase struct {
	sessions  ports.ISessionStore
	repo      ports.IEvaluationRepository
	broker    ports.IProducer
	analytics ports.IEvaluationAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс сессий.
func New(sessions ports.ISessionStore, repo ports.IEvaluationRepository, broker ports.IProducer, analytics ports.IEvaluationAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{sessions: sessions, repo: repo, broker: broker, analytics: analytics, log: log}
}

// completedEvaluation восстанавливает запись вычисления из состояния ДО
// события. Вычисление происходит только когда "=" или оператор видят уже
// отложенный оператор; правый операнд — толерантный разбор дисплея до
// события, итог берётся из состояния ПОСЛЕ.
func completedEvaluation(sessionID string, before engine.State, ev engine.Event, after engine.State) (domain.Evaluation, bool) {
	if before.HasError || before.PendingOperator == "" {
		return domain.Evaluation{}, false
	}
	if ev.Kind != engine.KindEquals && ev.Kind != engine.KindOperator {
		return domain.Evaluation{}, false
	}

	rec := domain.Evaluation{
		SessionID: sessionID,
		Operand1:  before.FirstOperand,
		Operand2:  engine.ParseNumber(before.DisplayText),
		Operator:  before.PendingOperator,
		Timestamp: time.Now(),
	}
	if after.HasError {
		rec.Message = after.ResultText
	} else {
		rec.Result = after.FirstOperand
	}
	return rec, true
}
