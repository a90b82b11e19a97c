// Package engine — чистая машина состояний калькулятора: ввод клавиш,
// вычисление с одним отложенным оператором, форматирование дисплея.
// Без I/O, без горутин, без блокировок — одно событие за вызов Apply.
package engine

import "strconv"

// State — состояние движка калькулятора. Значение, а не указатель:
// Apply возвращает новое состояние, старое не трогает.
// JSON-теги нужны для сериализации в хранилище сессий (Redis).
type State struct {
	// DisplayText — символы числа, которое сейчас набирается или показано.
	// Никогда не пустая строка, минимум "0". Не больше одной точки.
	DisplayText string `json:"display_text"`
	// ResultText — отформатированный результат последнего вычисления
	// (оператор или "="), пустая строка — результата нет.
	ResultText string `json:"result_text"`
	// FirstOperand — левый операнд отложенной операции.
	// Имеет смысл только при PendingOperator != "".
	FirstOperand float64 `json:"first_operand"`
	// PendingOperator — оператор, ждущий правый операнд. "" — оператора нет.
	PendingOperator string `json:"pending_operator"`
	// AwaitingSecond — следующая цифра/точка начинает новое число,
	// а не дописывается к текущему.
	AwaitingSecond bool `json:"awaiting_second"`
	// HasError — защёлка ошибки деления/остатка на ноль.
	// Снимается только клавишей сброса.
	HasError bool `json:"has_error"`
}

// NewState возвращает свежее состояние: на дисплее "0", всё остальное пусто.
func NewState() State {
	return State{DisplayText: "0"}
}

// ParseNumber — толерантный разбор текста дисплея: нечитаемое значение
// схлопывается в 0.0, ошибка наружу не выходит.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
