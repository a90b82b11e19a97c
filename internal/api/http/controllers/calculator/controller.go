package calculator

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tapCalc/internal/ports"
)

// Controller — маршруты калькулятора: нажатия клавиш, дисплей сессии, история.
type Controller struct {
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт контроллер калькулятора.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/sessions/:id/keys", c.press)
	api.GET("/sessions/:id/display", c.display)
	api.DELETE("/sessions/:id", c.forget)
	api.GET("/history", c.history)
}

// @Summary Нажать клавишу
// @Description Применяет одно нажатие к сессии калькулятора и возвращает обе строки дисплея. Ошибка деления на ноль — не HTTP-ошибка, а флаг error в ответе.
// @Tags calculator
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Param request body PressRequest true "Подпись нажатой кнопки"
// @Success 200 {object} DisplayResponse "Состояние дисплея после нажатия"
// @Failure 400 {object} ErrorResponse "Невалидный запрос"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/sessions/{id}/keys [post]
func (c *Controller) press(ctx *gin.Context) {
	var req PressRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("press bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	state, err := c.uc.Press(ctx.Request.Context(), ctx.Param("id"), req.Key)
	if err != nil {
		c.log.Error("press failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newDisplayResponse(state))
}

// @Summary Текущий дисплей сессии
// @Description Возвращает строку ввода и строку результата. Неизвестная сессия — свежий калькулятор с "0" на дисплее.
// @Tags calculator
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Success 200 {object} DisplayResponse "Состояние дисплея"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/sessions/{id}/display [get]
func (c *Controller) display(ctx *gin.Context) {
	state, err := c.uc.Display(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.log.Error("display failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newDisplayResponse(state))
}

// @Summary Забыть сессию
// @Description Удаляет сохранённое состояние сессии.
// @Tags calculator
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Success 200 {object} map[string]string "Статус"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/sessions/{id} [delete]
func (c *Controller) forget(ctx *gin.Context) {
	if err := c.uc.Forget(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.log.Error("forget failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "forgotten"})
}

// @Summary Получить историю вычислений
// @Description Возвращает список всех завершённых вычислений из БД
// @Tags calculator
// @Produce json
// @Success 200 {object} HistoryResponse "Список вычислений"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		c.log.Error("history failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	items := make([]HistoryItem, len(list))
	for i, ev := range list {
		items[i] = HistoryItem{
			ID:        ev.ID,
			SessionID: ev.SessionID,
			Operand1:  ev.Operand1,
			Operand2:  ev.Operand2,
			Operator:  ev.Operator,
			Result:    ev.Result,
			Message:   ev.Message,
			Timestamp: ev.Timestamp,
		}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}
