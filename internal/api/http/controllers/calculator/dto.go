package calculator

import (
	"time"

	"tapCalc/internal/engine"
)

// PressRequest — запрос нажатия клавиши (для POST /api/v1/sessions/:id/keys).
// Key — подпись кнопки: цифра, ".", оператор, "=", "C"/"AC", "⌫".
// Нераспознанные подписи принимаются и трактуются как Noop.
type PressRequest struct {
	Key string `json:"key" binding:"required"`
}

// DisplayResponse — две строки дисплея и флаг ошибки.
// ResultLine — строка результата в том виде, как её рисует фронт:
// "=" плюс результат, если он есть, иначе "=" плюс текущий ввод.
type DisplayResponse struct {
	Display    string `json:"display"`
	Result     string `json:"result,omitempty"`
	ResultLine string `json:"result_line"`
	Error      bool   `json:"error"`
}

// newDisplayResponse собирает ответ из состояния движка.
func newDisplayResponse(s engine.State) DisplayResponse {
	line := s.DisplayText
	if s.ResultText != "" {
		line = s.ResultText
	}
	return DisplayResponse{
		Display:    s.DisplayText,
		Result:     s.ResultText,
		ResultLine: "=" + line,
		Error:      s.HasError,
	}
}

// ErrorResponse — ответ с текстом ошибки.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HistoryItem — одна запись в истории (для GET /api/v1/history).
type HistoryItem struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id"`
	Operand1  float64   `json:"operand1"`
	Operand2  float64   `json:"operand2"`
	Operator  string    `json:"operator"`
	Result    float64   `json:"result"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse — ответ со списком вычислений.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}
