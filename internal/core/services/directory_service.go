package services

import (
	"context"
	"errors"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// DirectoryService is the doctor/patient CRUD pass-through. It owns no
// state: after a mutation the caller re-fetches the list.
type DirectoryService struct {
	backend  out.BackendPort
	notifier out.NotifierPort
	logger   out.LoggerPort
}

func NewDirectoryService(backend out.BackendPort, notifier out.NotifierPort, logger out.LoggerPort) *DirectoryService {
	return &DirectoryService{
		backend:  backend,
		notifier: notifier,
		logger:   logger.WithModule("DirectoryService"),
	}
}

func (s *DirectoryService) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	doctors, err := s.backend.ListDoctors(ctx)
	if err != nil {
		s.notifyFetchFailure(err, "Failed to fetch doctors. Please try again.")
		return nil, err
	}
	return doctors, nil
}

func (s *DirectoryService) CreateDoctor(ctx context.Context, input domain.DoctorInput) error {
	if err := s.backend.CreateDoctor(ctx, input); err != nil {
		s.notifyFetchFailure(err, "Failed to add doctor. Please try again.")
		return err
	}
	s.notifier.Success("Doctor added successfully.")
	return nil
}

func (s *DirectoryService) UpdateDoctor(ctx context.Context, doctorID int64, input domain.DoctorInput) error {
	if err := s.backend.UpdateDoctor(ctx, doctorID, input); err != nil {
		s.notifyFetchFailure(err, "Failed to update doctor. Please try again.")
		return err
	}
	s.notifier.Success("Doctor updated successfully.")
	return nil
}

func (s *DirectoryService) DeleteDoctor(ctx context.Context, doctorID int64) error {
	if err := s.backend.DeleteDoctor(ctx, doctorID); err != nil {
		s.notifyFetchFailure(err, "Failed to delete doctor. Please try again.")
		return err
	}
	s.notifier.Success("Doctor deleted successfully.")
	return nil
}

func (s *DirectoryService) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	patients, err := s.backend.ListPatients(ctx)
	if err != nil {
		s.notifyFetchFailure(err, "Failed to fetch patients. Please try again.")
		return nil, err
	}
	return patients, nil
}

func (s *DirectoryService) CreatePatient(ctx context.Context, input domain.PatientInput) error {
	if err := s.backend.CreatePatient(ctx, input); err != nil {
		s.notifyFetchFailure(err, "Failed to add patient. Please try again.")
		return err
	}
	s.notifier.Success("Patient added successfully.")
	return nil
}

func (s *DirectoryService) UpdatePatient(ctx context.Context, patientID int64, input domain.PatientInput) error {
	if err := s.backend.UpdatePatient(ctx, patientID, input); err != nil {
		s.notifyFetchFailure(err, "Failed to update patient. Please try again.")
		return err
	}
	s.notifier.Success("Patient updated successfully.")
	return nil
}

func (s *DirectoryService) DeletePatient(ctx context.Context, patientID int64) error {
	if err := s.backend.DeletePatient(ctx, patientID); err != nil {
		s.notifyFetchFailure(err, "Failed to delete patient. Please try again.")
		return err
	}
	s.notifier.Success("Patient deleted successfully.")
	return nil
}

// notifyFetchFailure surfaces any non-401 failure as a transient retryable
// notification. The unauthorized case is not a toast: it becomes a redirect
// at the surface.
func (s *DirectoryService) notifyFetchFailure(err error, message string) {
	if errors.Is(err, domain.ErrUnauthorized) {
		return
	}
	s.notifier.Error(message, true)
}
