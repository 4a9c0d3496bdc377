package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
	inport "github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// DirectoryController serves the doctor and patient management surface plus
// the per-doctor availability listing used by the booking flow.
type DirectoryController struct {
	directory    inport.DirectoryUseCase
	appointments inport.AppointmentsUseCase
	resolver     inport.SlotResolverUseCase
	session      inport.SessionUseCase
	nav          inport.NavigationUseCase
	logger       out.LoggerPort
}

func NewDirectoryController(
	directory inport.DirectoryUseCase,
	appointments inport.AppointmentsUseCase,
	resolver inport.SlotResolverUseCase,
	session inport.SessionUseCase,
	nav inport.NavigationUseCase,
	logger out.LoggerPort,
) *DirectoryController {
	return &DirectoryController{
		directory:    directory,
		appointments: appointments,
		resolver:     resolver,
		session:      session,
		nav:          nav,
		logger:       logger.WithModule("DirectoryController"),
	}
}

func (c *DirectoryController) RegisterRoutes(router *gin.Engine) {
	// Per-doctor appointments are readable without a session, matching the
	// backend's own contract for this path.
	router.GET("/medicos/:id/consultas", c.doctorAppointments)

	doctors := router.Group("/medicos", requireAuth(c.session))
	{
		doctors.GET("/", c.listDoctors)
		doctors.GET("/:id/horarios_disponiveis", c.doctorSlots)

		manage := doctors.Group("", requireAction(c.session, c.nav, domain.NavManageDoctors))
		{
			manage.POST("/", c.createDoctor)
			manage.PUT("/:id", c.updateDoctor)
			manage.DELETE("/:id", c.deleteDoctor)
		}
	}

	patients := router.Group("/pacientes",
		requireAuth(c.session),
		requireAction(c.session, c.nav, domain.NavManagePatients),
	)
	{
		patients.GET("/", c.listPatients)
		patients.POST("/", c.createPatient)
		patients.PUT("/:id", c.updatePatient)
		patients.DELETE("/:id", c.deletePatient)
		patients.GET("/:id/consultas", c.patientAppointments)
	}
}

func (c *DirectoryController) listDoctors(ctx *gin.Context) {
	doctors, err := c.directory.ListDoctors(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, doctors)
}

func (c *DirectoryController) createDoctor(ctx *gin.Context) {
	var input domain.DoctorInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.directory.CreateDoctor(ctx.Request.Context(), input); err != nil {
		respondError(ctx, err)
		return
	}

	// Mutation done: the caller re-fetches, nothing is patched here.
	ctx.Status(http.StatusCreated)
}

func (c *DirectoryController) updateDoctor(ctx *gin.Context) {
	doctorID, ok := pathID(ctx)
	if !ok {
		return
	}

	var input domain.DoctorInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.directory.UpdateDoctor(ctx.Request.Context(), doctorID, input); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *DirectoryController) deleteDoctor(ctx *gin.Context) {
	doctorID, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.directory.DeleteDoctor(ctx.Request.Context(), doctorID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// doctorSlots resolves availability outside the booking workflow, e.g. for a
// read-only doctor profile. An optional ?data=2006-01-02 narrows the listing
// to one calendar date.
func (c *DirectoryController) doctorSlots(ctx *gin.Context) {
	doctorID, ok := pathID(ctx)
	if !ok {
		return
	}

	var date *json_types.Date
	if raw := ctx.Query("data"); raw != "" {
		parsed, err := json_types.ParseDate(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
		date = &parsed
	}

	slots, err := c.resolver.Resolve(ctx.Request.Context(), doctorID, date)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, slots)
}

func (c *DirectoryController) doctorAppointments(ctx *gin.Context) {
	doctorID, ok := pathID(ctx)
	if !ok {
		return
	}

	appointments, err := c.appointments.ListForDoctor(ctx.Request.Context(), doctorID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, appointments)
}

func (c *DirectoryController) listPatients(ctx *gin.Context) {
	patients, err := c.directory.ListPatients(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, patients)
}

func (c *DirectoryController) createPatient(ctx *gin.Context) {
	var input domain.PatientInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.directory.CreatePatient(ctx.Request.Context(), input); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusCreated)
}

func (c *DirectoryController) updatePatient(ctx *gin.Context) {
	patientID, ok := pathID(ctx)
	if !ok {
		return
	}

	var input domain.PatientInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.directory.UpdatePatient(ctx.Request.Context(), patientID, input); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *DirectoryController) deletePatient(ctx *gin.Context) {
	patientID, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.directory.DeletePatient(ctx.Request.Context(), patientID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *DirectoryController) patientAppointments(ctx *gin.Context) {
	patientID, ok := pathID(ctx)
	if !ok {
		return
	}

	appointments, err := c.appointments.ListForPatient(ctx.Request.Context(), patientID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, appointments)
}

func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return 0, false
	}
	return id, true
}
