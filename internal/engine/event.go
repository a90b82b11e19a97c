package engine

import "tapCalc/internal/domain"

// Kind — вид события ввода. Закрытое перечисление, не иерархия типов.
type Kind int

// Виды событий.
const (
	KindNoop Kind = iota
	KindDigit
	KindDecimal
	KindOperator
	KindEquals
	KindClear
	KindBackspace
)

// Event — одно логическое нажатие. Digit заполнен только для KindDigit,
// Op — только для KindOperator.
type Event struct {
	Kind  Kind
	Digit byte
	Op    string
}

// Digit — событие цифры d ('0'..'9').
func Digit(d byte) Event { return Event{Kind: KindDigit, Digit: d} }

// Decimal — событие десятичной точки.
func Decimal() Event { return Event{Kind: KindDecimal} }

// Operator — событие бинарного оператора op (+, -, *, /, %).
func Operator(op string) Event { return Event{Kind: KindOperator, Op: op} }

// Equals — событие "=".
func Equals() Event { return Event{Kind: KindEquals} }

// Clear — полный сброс (AC).
func Clear() Event { return Event{Kind: KindClear} }

// Backspace — удаление последнего символа.
func Backspace() Event { return Event{Kind: KindBackspace} }

// Noop — событие без числового эффекта (научные клавиши и прочее).
func Noop() Event { return Event{Kind: KindNoop} }

// MapLabel переводит подпись кнопки в событие. Нераспознанные подписи
// (e, sin, deg и т.п.) — Noop: принимаются без ошибки, состояние не меняют.
func MapLabel(label string) Event {
	if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
		return Digit(label[0])
	}
	switch label {
	case ".":
		return Decimal()
	case domain.OpAdd, domain.OpSub, domain.OpMul, domain.OpDiv, domain.OpMod:
		return Operator(label)
	case "=":
		return Equals()
	case "C", "AC":
		return Clear()
	case "⌫", "backspace":
		return Backspace()
	default:
		return Noop()
	}
}
