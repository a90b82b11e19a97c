package domain

import (
	"errors"
	"time"
)

// Ошибки нулевого делителя — единственные арифметические ошибки движка.
// Переполнение в Inf/NaN не ловится, IEEE-754 семантика проходит насквозь.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrModulusByZero  = errors.New("modulus by zero")
)

// ErrUnknownOperator возвращается, когда оператор не поддерживается.
var ErrUnknownOperator = errors.New("unknown operator")

// Диагностические строки для строки результата при ошибке нулевого делителя.
const (
	MsgDivisionByZero = "Error: Division by zero"
	MsgModulusByZero  = "Error: Modulus by zero"
)

// Константы бинарных операторов.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "*"
	OpDiv = "/"
	OpMod = "%"
)

// Evaluation — запись об одном завершённом вычислении (по "=" или по
// цепочке операторов). При ошибке нулевого делителя Result равен 0,
// а Message содержит диагностику.
type Evaluation struct {
	ID        int
	SessionID string
	Operand1  float64
	Operand2  float64
	Operator  string
	Result    float64
	Message   string
	Timestamp time.Time
}
