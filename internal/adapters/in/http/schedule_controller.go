package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
	inport "github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// ScheduleController is the Medico-only availability-window surface.
type ScheduleController struct {
	schedule inport.ScheduleUseCase
	session  inport.SessionUseCase
	nav      inport.NavigationUseCase
	logger   out.LoggerPort
}

func NewScheduleController(
	schedule inport.ScheduleUseCase,
	session inport.SessionUseCase,
	nav inport.NavigationUseCase,
	logger out.LoggerPort,
) *ScheduleController {
	return &ScheduleController{
		schedule: schedule,
		session:  session,
		nav:      nav,
		logger:   logger.WithModule("ScheduleController"),
	}
}

func (c *ScheduleController) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/horarios",
		requireAuth(c.session),
		requireAction(c.session, c.nav, domain.NavManageSchedule),
	)
	{
		group.GET("", c.list)
		group.POST("", c.add)
	}
}

type AddScheduleRequest struct {
	AvailableDate string `json:"data_disponivel" binding:"required"`
	StartTime     string `json:"horario_inicial" binding:"required"`
	EndTime       string `json:"horario_final" binding:"required"`
}

func (c *ScheduleController) list(ctx *gin.Context) {
	windows, err := c.schedule.ListWindows(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, windows)
}

func (c *ScheduleController) add(ctx *gin.Context) {
	var req AddScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := json_types.ParseDate(req.AvailableDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}
	startTime, err := json_types.ParseTimeOfDay(req.StartTime)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start time format"})
		return
	}
	endTime, err := json_types.ParseTimeOfDay(req.EndTime)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end time format"})
		return
	}

	windows, err := c.schedule.AddWindow(ctx.Request.Context(), domain.ScheduleWindowInput{
		AvailableDate: date,
		StartTime:     startTime,
		EndTime:       endTime,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, windows)
}
