package services

import (
	"context"
	"errors"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

type AppointmentService struct {
	backend  out.BackendPort
	notifier out.NotifierPort
	logger   out.LoggerPort
}

func NewAppointmentService(backend out.BackendPort, notifier out.NotifierPort, logger out.LoggerPort) *AppointmentService {
	return &AppointmentService{
		backend:  backend,
		notifier: notifier,
		logger:   logger.WithModule("AppointmentService"),
	}
}

func (s *AppointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	appointments, err := s.backend.ListAppointments(ctx)
	if err != nil {
		s.notify(err, "Failed to fetch appointments. Please try again.")
		return nil, err
	}
	return appointments, nil
}

func (s *AppointmentService) ListForDoctor(ctx context.Context, doctorID int64) ([]domain.Appointment, error) {
	appointments, err := s.backend.ListDoctorAppointments(ctx, doctorID)
	if err != nil {
		s.notify(err, "Failed to fetch the doctor's appointments. Please try again.")
		return nil, err
	}
	return appointments, nil
}

func (s *AppointmentService) ListForPatient(ctx context.Context, patientID int64) ([]domain.Appointment, error) {
	appointments, err := s.backend.ListPatientAppointments(ctx, patientID)
	if err != nil {
		s.notify(err, "Failed to fetch the patient's appointments. Please try again.")
		return nil, err
	}
	return appointments, nil
}

// Cancel cancels one appointment, then re-fetches the whole list. The list
// is never patched in place.
func (s *AppointmentService) Cancel(ctx context.Context, appointmentID int64) ([]domain.Appointment, error) {
	if err := s.backend.CancelAppointment(ctx, appointmentID); err != nil {
		s.notify(err, "Failed to cancel appointment. Please try again.")
		return nil, err
	}

	s.notifier.Success("Appointment cancelled.")
	s.logger.Info("appointments.cancel.done", out.LogFields{
		"appointmentId": appointmentID,
	})

	return s.List(ctx)
}

func (s *AppointmentService) notify(err error, message string) {
	if errors.Is(err, domain.ErrUnauthorized) {
		return
	}
	s.notifier.Error(message, true)
}
