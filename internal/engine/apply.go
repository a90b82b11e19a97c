package engine

import (
	"errors"
	"math"
	"strings"

	"tapCalc/internal/domain"
)

// Apply применяет одно событие к состоянию и возвращает новое состояние.
// Единственная публичная операция машины. Ошибки наружу не выходят:
// нулевой делитель защёлкивает HasError и пишет диагностику в ResultText.
func Apply(s State, ev Event) State {
	// Защёлка ошибки: пока HasError, всё кроме сброса игнорируется.
	if s.HasError && ev.Kind != KindClear {
		return s
	}

	switch ev.Kind {
	case KindDigit:
		return applyDigit(s, ev.Digit)
	case KindDecimal:
		return applyDecimal(s)
	case KindOperator:
		return applyOperator(s, ev.Op)
	case KindEquals:
		return applyEquals(s)
	case KindClear:
		return NewState()
	case KindBackspace:
		return applyBackspace(s)
	}
	// KindNoop и неизвестные виды — тождество.
	return s
}

func applyDigit(s State, d byte) State {
	switch {
	case s.AwaitingSecond:
		// Новое число начинается с одиночной цифры, даже если это "0".
		s.DisplayText = string(d)
		s.AwaitingSecond = false
	case s.DisplayText == "0":
		// Запрет ведущих нулей: "0" затем "5" даёт "5", а не "05".
		s.DisplayText = string(d)
	default:
		s.DisplayText += string(d)
	}
	s.ResultText = ""
	return s
}

func applyDecimal(s State) State {
	if s.AwaitingSecond {
		s.DisplayText = "0."
		s.AwaitingSecond = false
	} else if !strings.Contains(s.DisplayText, ".") {
		// Вторая точка в том же числе — no-op по тексту.
		s.DisplayText += "."
	}
	s.ResultText = ""
	return s
}

func applyOperator(s State, op string) State {
	if !validOperator(op) {
		return s
	}
	current := ParseNumber(s.DisplayText)

	if s.PendingOperator == "" {
		s.FirstOperand = current
		s.PendingOperator = op
		s.AwaitingSecond = true
		s.ResultText = ""
		return s
	}

	// Цепочка: отложенная операция вычисляется сразу, текущий дисплей —
	// правый операнд. Новый оператор при ошибке НЕ устанавливается.
	result, err := evaluate(s.FirstOperand, s.PendingOperator, current)
	if err != nil {
		s.HasError = true
		s.ResultText = diagnostic(err)
		return s
	}
	s.FirstOperand = result
	s.DisplayText = Format(result)
	s.PendingOperator = op
	s.AwaitingSecond = true
	s.ResultText = ""
	return s
}

func applyEquals(s State) State {
	if s.PendingOperator == "" {
		return s
	}
	second := ParseNumber(s.DisplayText)
	result, err := evaluate(s.FirstOperand, s.PendingOperator, second)
	if err != nil {
		s.HasError = true
		s.ResultText = diagnostic(err)
		return s
	}
	s.ResultText = Format(result)
	s.DisplayText = s.ResultText
	s.FirstOperand = result
	s.AwaitingSecond = true
	// PendingOperator намеренно остаётся установленным: следующий оператор
	// сразу пересчитает по нему, "=" повторяет последнюю операцию.
	return s
}

func applyBackspace(s State) State {
	if len(s.DisplayText) > 1 {
		s.DisplayText = s.DisplayText[:len(s.DisplayText)-1]
	} else {
		s.DisplayText = "0"
	}
	s.ResultText = ""
	return s
}

func validOperator(op string) bool {
	switch op {
	case domain.OpAdd, domain.OpSub, domain.OpMul, domain.OpDiv, domain.OpMod:
		return true
	}
	return false
}

// evaluate считает a op b. Правый операнд, равный ровно 0, для "/" и "%"
// — ошибка нулевого делителя. Остаток — усечённый к нулю (math.Mod),
// знак следует за левым операндом, НЕ математический floor-mod.
func evaluate(a float64, op string, b float64) (float64, error) {
	switch op {
	case domain.OpAdd:
		return a + b, nil
	case domain.OpSub:
		return a - b, nil
	case domain.OpMul:
		return a * b, nil
	case domain.OpDiv:
		if b == 0 {
			return 0, domain.ErrDivisionByZero
		}
		return a / b, nil
	case domain.OpMod:
		if b == 0 {
			return 0, domain.ErrModulusByZero
		}
		return math.Mod(a, b), nil
	}
	return 0, domain.ErrUnknownOperator
}

func diagnostic(err error) string {
	if errors.Is(err, domain.ErrModulusByZero) {
		return domain.MsgModulusByZero
	}
	return domain.MsgDivisionByZero
}
