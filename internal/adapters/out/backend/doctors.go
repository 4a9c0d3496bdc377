package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

func (a *BackendAdapter) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	var doctors []domain.Doctor
	if err := a.request(ctx, http.MethodGet, "/medicos/", nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (a *BackendAdapter) CreateDoctor(ctx context.Context, input domain.DoctorInput) error {
	return a.request(ctx, http.MethodPost, "/medicos/", input, nil)
}

func (a *BackendAdapter) UpdateDoctor(ctx context.Context, doctorID int64, input domain.DoctorInput) error {
	return a.request(ctx, http.MethodPut, fmt.Sprintf("/medicos/%d", doctorID), input, nil)
}

func (a *BackendAdapter) DeleteDoctor(ctx context.Context, doctorID int64) error {
	return a.request(ctx, http.MethodDelete, fmt.Sprintf("/medicos/%d", doctorID), nil, nil)
}

func (a *BackendAdapter) ListDoctorSlots(ctx context.Context, doctorID int64) ([]domain.AvailabilitySlot, error) {
	var slots []domain.AvailabilitySlot
	path := fmt.Sprintf("/medicos/%d/horarios_disponiveis", doctorID)
	if err := a.request(ctx, http.MethodGet, path, nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// ListDoctorAppointments is an unauthenticated read by backend design; with
// no token in the session the call simply goes out without the header.
func (a *BackendAdapter) ListDoctorAppointments(ctx context.Context, doctorID int64) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	path := fmt.Sprintf("/medicos/%d/consultas", doctorID)
	if err := a.request(ctx, http.MethodGet, path, nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}
