package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapCalc/internal/domain"
)

// run прогоняет последовательность подписей клавиш через Apply от свежего состояния.
func run(labels ...string) State {
	s := NewState()
	for _, l := range labels {
		s = Apply(s, MapLabel(l))
	}
	return s
}

func TestApply_DigitsAndResult(t *testing.T) {
	// 12 + 5 = → 17
	s := run("1", "2", "+", "5", "=")

	assert.Equal(t, "17", s.ResultText)
	assert.Equal(t, "17", s.DisplayText)
	assert.Equal(t, 17.0, s.FirstOperand)
	assert.True(t, s.AwaitingSecond)
	assert.False(t, s.HasError)
}

func TestApply_DivisionByZero(t *testing.T) {
	// 8 / 0 = → защёлка ошибки с диагностикой
	s := run("8", "/", "0", "=")

	require.True(t, s.HasError)
	assert.Equal(t, domain.MsgDivisionByZero, s.ResultText)
	// Операнд и оператор не трогаются — до сброса они не имеют значения.
	assert.Equal(t, 8.0, s.FirstOperand)
	assert.Equal(t, domain.OpDiv, s.PendingOperator)
}

func TestApply_ModulusByZero(t *testing.T) {
	s := run("9", "%", "0", "=")

	require.True(t, s.HasError)
	assert.Equal(t, domain.MsgModulusByZero, s.ResultText)
}

func TestApply_ErrorLatch(t *testing.T) {
	// Любое событие кроме сброса в состоянии ошибки — тождество.
	errState := run("8", "/", "0", "=")
	require.True(t, errState.HasError)

	events := []Event{
		Digit('5'), Decimal(), Operator(domain.OpAdd), Equals(), Backspace(), Noop(),
	}
	for _, ev := range events {
		assert.Equal(t, errState, Apply(errState, ev), "событие %v не должно менять состояние ошибки", ev.Kind)
	}

	// Сброс — единственный выход.
	assert.Equal(t, NewState(), Apply(errState, Clear()))
}

func TestApply_OperatorChaining(t *testing.T) {
	// 2 + 3 * 4 = → строго слева направо: (2+3)=5, 5*4=20
	s := run("2", "+", "3", "*", "4", "=")

	assert.Equal(t, "20", s.ResultText)
	assert.Equal(t, 20.0, s.FirstOperand)
}

func TestApply_ChainingDivisionByZero(t *testing.T) {
	// 8 / 0 + : цепочка падает на вычислении, новый оператор не ставится.
	s := run("8", "/", "0", "+")

	require.True(t, s.HasError)
	assert.Equal(t, domain.MsgDivisionByZero, s.ResultText)
	assert.Equal(t, domain.OpDiv, s.PendingOperator)
}

func TestApply_Backspace(t *testing.T) {
	s := run("7", "⌫")
	assert.Equal(t, "0", s.DisplayText)

	s = run("1", "2", "3", "⌫")
	assert.Equal(t, "12", s.DisplayText)

	// Backspace не трогает отложенную операцию.
	s = run("5", "+", "7", "⌫")
	assert.Equal(t, "0", s.DisplayText)
	assert.Equal(t, domain.OpAdd, s.PendingOperator)
	assert.Equal(t, 5.0, s.FirstOperand)
}

func TestApply_Clear(t *testing.T) {
	s := run("1", "2", "+", "3", "C")
	assert.Equal(t, NewState(), s)
}

func TestApply_LeadingZeroGuard(t *testing.T) {
	s := run("0", "0", "5")
	assert.Equal(t, "5", s.DisplayText)
}

func TestApply_DecimalGuard(t *testing.T) {
	// Вторая точка — no-op по тексту.
	s := run("1", ".", ".", "5")
	assert.Equal(t, "1.5", s.DisplayText)
}

func TestApply_DecimalStartsFreshOperand(t *testing.T) {
	// Точка сразу после оператора начинает "0."
	s := run("3", "+", ".")
	assert.Equal(t, "0.", s.DisplayText)
	assert.False(t, s.AwaitingSecond)
}

func TestApply_DigitAfterOperatorStartsFresh(t *testing.T) {
	s := run("1", "2", "+")
	require.True(t, s.AwaitingSecond)

	s = Apply(s, Digit('0'))
	// Новое число начинается с одиночного "0", даже ноль.
	assert.Equal(t, "0", s.DisplayText)
	assert.False(t, s.AwaitingSecond)
}

func TestApply_EqualsWithoutOperator(t *testing.T) {
	s := run("4", "2", "=")
	assert.Equal(t, "42", s.DisplayText)
	assert.Empty(t, s.ResultText)
	assert.Empty(t, s.PendingOperator)
}

func TestApply_RepeatEquals(t *testing.T) {
	// После "=" оператор остаётся установленным: повторное "=" считает снова
	// от только что полученного результата. 2 + 3 = → 5, = → 5+5=10.
	s := run("2", "+", "3", "=")
	require.Equal(t, "5", s.ResultText)
	require.Equal(t, domain.OpAdd, s.PendingOperator)

	s = Apply(s, Equals())
	assert.Equal(t, "10", s.ResultText)
	assert.Equal(t, 10.0, s.FirstOperand)
}

func TestApply_OperatorAfterEqualsRecomputes(t *testing.T) {
	// Граница поведения: оператор сразу после "=" видит отложенный оператор
	// и немедленно пересчитывает по нему, прежде чем встать самому.
	// 2 + 3 = (5), затем "*": сначала 5+5=10, потом ставится "*".
	s := run("2", "+", "3", "=", "*")

	assert.False(t, s.HasError)
	assert.Equal(t, 10.0, s.FirstOperand)
	assert.Equal(t, domain.OpMul, s.PendingOperator)
	assert.True(t, s.AwaitingSecond)
}

func TestApply_Noop(t *testing.T) {
	s := run("1", "2", "+", "3")
	for _, label := range []string{"e", "sin", "deg", "π", ""} {
		assert.Equal(t, s, Apply(s, MapLabel(label)), "подпись %q должна быть Noop", label)
	}
}

func TestApply_ModulusTruncatedTowardZero(t *testing.T) {
	// Знак остатка следует за левым операндом (math.Mod), не floor-mod.
	s := run("7", "%", "3", "=")
	assert.Equal(t, "1", s.ResultText)

	// Унарного минуса на клавиатуре нет, отрицательный дисплей задаём напрямую.
	neg := NewState()
	neg.DisplayText = "-7"
	neg = Apply(neg, Operator(domain.OpMod))
	neg = Apply(neg, Digit('3'))
	neg = Apply(neg, Equals())
	assert.Equal(t, "-1", neg.ResultText)
}

func TestApply_TolerantParseCollapsesToZero(t *testing.T) {
	// Нечитаемый дисплей (например, результат с разделителями тысяч)
	// разбирается как 0 — поведение источника сохранено.
	s := NewState()
	s.DisplayText = "1,234"
	s = Apply(s, Operator(domain.OpAdd))
	assert.Equal(t, 0.0, s.FirstOperand)
}

func TestApply_DivisionProducesFraction(t *testing.T) {
	s := run("1", "/", "8", "=")
	assert.Equal(t, "0.125", s.ResultText)
}

func TestApply_UnknownOperatorIgnored(t *testing.T) {
	s := run("5")
	assert.Equal(t, s, Apply(s, Operator("^")))
}
