package out

import (
	"context"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

// BackendPort is the single gateway to the clinic REST API. Every outbound
// call funnels through it: bearer-token attachment and the unauthorized
// reaction live behind this interface, never at call sites.
//
// Writes return no entity; lists are always re-fetched after a mutation
// instead of patching a cached copy.
type BackendPort interface {
	// Doctors
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
	CreateDoctor(ctx context.Context, input domain.DoctorInput) error
	UpdateDoctor(ctx context.Context, doctorID int64, input domain.DoctorInput) error
	DeleteDoctor(ctx context.Context, doctorID int64) error

	// Per-doctor reads. ListDoctorAppointments is an unauthenticated path
	// by backend design; the gateway omits the bearer header when no token
	// is present rather than refusing the call.
	ListDoctorSlots(ctx context.Context, doctorID int64) ([]domain.AvailabilitySlot, error)
	ListDoctorAppointments(ctx context.Context, doctorID int64) ([]domain.Appointment, error)

	// Patients
	ListPatients(ctx context.Context) ([]domain.Patient, error)
	CreatePatient(ctx context.Context, input domain.PatientInput) error
	UpdatePatient(ctx context.Context, patientID int64, input domain.PatientInput) error
	DeletePatient(ctx context.Context, patientID int64) error
	ListPatientAppointments(ctx context.Context, patientID int64) ([]domain.Appointment, error)

	// Appointments of the current actor
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	BookAppointment(ctx context.Context, req domain.BookingRequest) error
	CancelAppointment(ctx context.Context, appointmentID int64) error

	// Doctor availability windows
	ListScheduleWindows(ctx context.Context) ([]domain.ScheduleWindow, error)
	CreateScheduleWindow(ctx context.Context, input domain.ScheduleWindowInput) error
}

// CredentialsPort is what the backend gateway needs from the session: the
// current bearer token and a way to destroy the session when the backend
// answers 401.
type CredentialsPort interface {
	Token() string
	Invalidate(ctx context.Context)
}
