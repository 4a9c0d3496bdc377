package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

func (a *BackendAdapter) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	if err := a.request(ctx, http.MethodGet, "/consultas", nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (a *BackendAdapter) BookAppointment(ctx context.Context, req domain.BookingRequest) error {
	path := fmt.Sprintf("/consultas/%d/agendar", req.DoctorID)
	return a.request(ctx, http.MethodPost, path, req, nil)
}

func (a *BackendAdapter) CancelAppointment(ctx context.Context, appointmentID int64) error {
	path := fmt.Sprintf("/consultas/%d/cancelar", appointmentID)
	return a.request(ctx, http.MethodPut, path, nil, nil)
}

func (a *BackendAdapter) ListScheduleWindows(ctx context.Context) ([]domain.ScheduleWindow, error) {
	var windows []domain.ScheduleWindow
	if err := a.request(ctx, http.MethodGet, "/horarios", nil, &windows); err != nil {
		return nil, err
	}
	return windows, nil
}

func (a *BackendAdapter) CreateScheduleWindow(ctx context.Context, input domain.ScheduleWindowInput) error {
	return a.request(ctx, http.MethodPost, "/horarios/", input, nil)
}
