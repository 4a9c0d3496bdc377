package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	inport "github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

type AppointmentController struct {
	appointments inport.AppointmentsUseCase
	session      inport.SessionUseCase
	nav          inport.NavigationUseCase
	logger       out.LoggerPort
}

func NewAppointmentController(
	appointments inport.AppointmentsUseCase,
	session inport.SessionUseCase,
	nav inport.NavigationUseCase,
	logger out.LoggerPort,
) *AppointmentController {
	return &AppointmentController{
		appointments: appointments,
		session:      session,
		nav:          nav,
		logger:       logger.WithModule("AppointmentController"),
	}
}

func (c *AppointmentController) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/consultas",
		requireAuth(c.session),
		requireAction(c.session, c.nav, domain.NavViewAppointments),
	)
	{
		group.GET("", c.list)
		group.PUT("/:id/cancelar", c.cancel)
	}
}

func (c *AppointmentController) list(ctx *gin.Context) {
	appointments, err := c.appointments.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, appointments)
}

// cancel cancels one appointment and answers with the refreshed list.
func (c *AppointmentController) cancel(ctx *gin.Context) {
	appointmentID, ok := pathID(ctx)
	if !ok {
		return
	}

	appointments, err := c.appointments.Cancel(ctx.Request.Context(), appointmentID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, appointments)
}
