package in

import (
	"context"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

// DirectoryUseCase is the doctor/patient CRUD surface. Mutations trigger a
// re-fetch by the caller; nothing is patched client-side.
type DirectoryUseCase interface {
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
	CreateDoctor(ctx context.Context, input domain.DoctorInput) error
	UpdateDoctor(ctx context.Context, doctorID int64, input domain.DoctorInput) error
	DeleteDoctor(ctx context.Context, doctorID int64) error

	ListPatients(ctx context.Context) ([]domain.Patient, error)
	CreatePatient(ctx context.Context, input domain.PatientInput) error
	UpdatePatient(ctx context.Context, patientID int64, input domain.PatientInput) error
	DeletePatient(ctx context.Context, patientID int64) error
}

type AppointmentsUseCase interface {
	// List returns the current actor's appointments.
	List(ctx context.Context) ([]domain.Appointment, error)
	ListForDoctor(ctx context.Context, doctorID int64) ([]domain.Appointment, error)
	ListForPatient(ctx context.Context, patientID int64) ([]domain.Appointment, error)

	// Cancel cancels an appointment and returns the refreshed list.
	Cancel(ctx context.Context, appointmentID int64) ([]domain.Appointment, error)
}

type ScheduleUseCase interface {
	ListWindows(ctx context.Context) ([]domain.ScheduleWindow, error)

	// AddWindow creates an availability window for the acting doctor and
	// returns the refreshed list.
	AddWindow(ctx context.Context, input domain.ScheduleWindowInput) ([]domain.ScheduleWindow, error)
}
