package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	inport "github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// ScheduleService manages the acting doctor's availability windows.
type ScheduleService struct {
	session  inport.SessionUseCase
	backend  out.BackendPort
	notifier out.NotifierPort
	logger   out.LoggerPort
}

func NewScheduleService(
	session inport.SessionUseCase,
	backend out.BackendPort,
	notifier out.NotifierPort,
	logger out.LoggerPort,
) *ScheduleService {
	return &ScheduleService{
		session:  session,
		backend:  backend,
		notifier: notifier,
		logger:   logger.WithModule("ScheduleService"),
	}
}

func (s *ScheduleService) ListWindows(ctx context.Context) ([]domain.ScheduleWindow, error) {
	windows, err := s.backend.ListScheduleWindows(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			s.notifier.Error("Failed to fetch doctor schedules.", true)
		}
		return nil, err
	}
	return windows, nil
}

func (s *ScheduleService) AddWindow(ctx context.Context, input domain.ScheduleWindowInput) ([]domain.ScheduleWindow, error) {
	actor := s.session.Current()
	if actor.Role != domain.RoleDoctor {
		return nil, domain.ErrForbidden
	}

	// The window always belongs to the acting doctor, whatever the
	// payload claims.
	if doctorID, err := strconv.ParseInt(actor.UserID, 10, 64); err == nil {
		input.DoctorID = doctorID
	}

	if input.AvailableDate.IsZero() || input.StartTime.IsZero() || input.EndTime.IsZero() {
		s.notifier.Error("Please pick a date, start time and end time.", false)
		return nil, domain.ErrValidation
	}

	if err := s.backend.CreateScheduleWindow(ctx, input); err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			s.notifier.Error("Failed to add schedule.", true)
		}
		return nil, err
	}

	s.notifier.Success("Schedule added successfully.")
	s.logger.Info("schedule.window.added", out.LogFields{
		"doctorId": input.DoctorID,
		"date":     input.AvailableDate.String(),
	})

	return s.ListWindows(ctx)
}
