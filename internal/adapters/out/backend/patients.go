package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

func (a *BackendAdapter) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	var patients []domain.Patient
	if err := a.request(ctx, http.MethodGet, "/pacientes/", nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (a *BackendAdapter) CreatePatient(ctx context.Context, input domain.PatientInput) error {
	return a.request(ctx, http.MethodPost, "/pacientes/", input, nil)
}

func (a *BackendAdapter) UpdatePatient(ctx context.Context, patientID int64, input domain.PatientInput) error {
	return a.request(ctx, http.MethodPut, fmt.Sprintf("/pacientes/%d", patientID), input, nil)
}

func (a *BackendAdapter) DeletePatient(ctx context.Context, patientID int64) error {
	return a.request(ctx, http.MethodDelete, fmt.Sprintf("/pacientes/%d", patientID), nil, nil)
}

func (a *BackendAdapter) ListPatientAppointments(ctx context.Context, patientID int64) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	path := fmt.Sprintf("/pacientes/%d/consultas", patientID)
	if err := a.request(ctx, http.MethodGet, path, nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}
