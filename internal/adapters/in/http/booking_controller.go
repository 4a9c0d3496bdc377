package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
	inport "github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// BookingController exposes the booking workflow as one resource: the draft.
// Every selection returns the updated draft plus the currently resolved
// slots so the surface renders exactly the machine state.
type BookingController struct {
	booking inport.BookingUseCase
	session inport.SessionUseCase
	nav     inport.NavigationUseCase
	logger  out.LoggerPort
}

func NewBookingController(
	booking inport.BookingUseCase,
	session inport.SessionUseCase,
	nav inport.NavigationUseCase,
	logger out.LoggerPort,
) *BookingController {
	return &BookingController{
		booking: booking,
		session: session,
		nav:     nav,
		logger:  logger.WithModule("BookingController"),
	}
}

func (c *BookingController) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/booking",
		requireAuth(c.session),
		requireAction(c.session, c.nav, domain.NavBookAppointment),
	)
	{
		group.POST("", c.start)
		group.GET("", c.current)
		group.DELETE("", c.reset)
		group.POST("/patient", c.selectPatient)
		group.POST("/doctor", c.selectDoctor)
		group.POST("/date", c.selectDate)
		group.POST("/slot", c.selectSlot)
		group.POST("/submit", c.submit)
	}
}

type SelectPatientRequest struct {
	PatientID int64 `json:"id_paciente" binding:"required"`
}

type SelectDoctorRequest struct {
	DoctorID int64 `json:"id_medico" binding:"required"`
}

type SelectDateRequest struct {
	Date string `json:"data" binding:"required"`
}

type SelectSlotRequest struct {
	Slot string `json:"slot" binding:"required"`
}

func (c *BookingController) start(ctx *gin.Context) {
	draft, err := c.booking.Start(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondDraft(ctx, draft)
}

func (c *BookingController) current(ctx *gin.Context) {
	c.respondDraft(ctx, c.booking.Current())
}

func (c *BookingController) reset(ctx *gin.Context) {
	c.booking.Reset(ctx.Request.Context())
	ctx.Status(http.StatusNoContent)
}

func (c *BookingController) selectPatient(ctx *gin.Context) {
	var req SelectPatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := c.booking.SelectPatient(ctx.Request.Context(), req.PatientID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondDraft(ctx, draft)
}

func (c *BookingController) selectDoctor(ctx *gin.Context) {
	var req SelectDoctorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := c.booking.SelectDoctor(ctx.Request.Context(), req.DoctorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondDraft(ctx, draft)
}

func (c *BookingController) selectDate(ctx *gin.Context) {
	var req SelectDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := json_types.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	draft, err := c.booking.SelectDate(ctx.Request.Context(), date)
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondDraft(ctx, draft)
}

func (c *BookingController) selectSlot(ctx *gin.Context) {
	var req SelectSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := c.booking.SelectSlot(ctx.Request.Context(), req.Slot)
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondDraft(ctx, draft)
}

func (c *BookingController) submit(ctx *gin.Context) {
	draft, err := c.booking.Submit(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondDraft(ctx, draft)
}

func (c *BookingController) respondDraft(ctx *gin.Context, draft domain.BookingDraft) {
	slots := c.booking.AvailableSlots()
	keys := make([]string, 0, len(slots))
	for _, slot := range slots {
		keys = append(keys, slot.Key())
	}

	ctx.JSON(http.StatusOK, gin.H{
		"draft":    draft,
		"slots":    slots,
		"slotKeys": keys,
	})
}
