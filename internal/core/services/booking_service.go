package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
	inport "github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
	"github.com/suchimauz/clinic-booking-gateway/internal/utils"
)

// BookingService drives the dependent selection sequence
// patient -> doctor -> slot and performs the final write.
//
// Slot resolutions run outside the lock and carry the draft generation at
// dispatch time; a resolution that lands after the doctor or date changed
// again is discarded instead of overwriting the newer list.
type BookingService struct {
	session  inport.SessionUseCase
	resolver inport.SlotResolverUseCase
	backend  out.BackendPort
	notifier out.NotifierPort
	logger   out.LoggerPort

	mu         sync.Mutex
	draft      domain.BookingDraft
	slots      []domain.AvailabilitySlot
	submitting bool
}

func NewBookingService(
	session inport.SessionUseCase,
	resolver inport.SlotResolverUseCase,
	backend out.BackendPort,
	notifier out.NotifierPort,
	logger out.LoggerPort,
) *BookingService {
	return &BookingService{
		session:  session,
		resolver: resolver,
		backend:  backend,
		notifier: notifier,
		logger:   logger.WithModule("BookingService"),
	}
}

func (s *BookingService) Start(ctx context.Context) (domain.BookingDraft, error) {
	actor := s.session.Current()
	if !actor.IsAuthenticated {
		return domain.BookingDraft{}, domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	generation := s.draft.Generation + 1
	s.draft = domain.BookingDraft{
		State:      domain.BookingStateSelectingPatient,
		Generation: generation,
	}
	s.slots = nil
	s.submitting = false

	// An actor with role Paciente books for themselves: their own id is
	// bound at workflow entry and patient selection is skipped.
	if actor.Role == domain.RolePatient {
		patientID, err := strconv.ParseInt(actor.UserID, 10, 64)
		if err != nil {
			s.logger.Warn("booking.start.bad_user_id", out.LogFields{
				"userId": actor.UserID,
			})
		} else {
			s.draft.PatientID = patientID
		}
		s.draft.State = domain.BookingStateSelectingDoctor
	}

	s.logger.Info("booking.start", out.LogFields{
		"role":  actor.Role,
		"state": s.draft.State,
	})

	return s.draft, nil
}

func (s *BookingService) SelectPatient(ctx context.Context, patientID int64) (domain.BookingDraft, error) {
	actor := s.session.Current()
	if actor.Role == domain.RolePatient {
		// Booking for someone else is not exposed to patients.
		return s.Current(), domain.ErrForbidden
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.PatientID = patientID
	if s.draft.State == domain.BookingStateSelectingPatient {
		s.draft.State = domain.BookingStateSelectingDoctor
	}

	return s.draft, nil
}

func (s *BookingService) SelectDoctor(ctx context.Context, doctorID int64) (domain.BookingDraft, error) {
	s.mu.Lock()

	s.draft.DoctorID = doctorID
	// A previously chosen slot belongs to a no-longer-selected doctor.
	s.draft.SlotKey = ""
	s.slots = nil
	s.draft.Generation++
	if s.draft.State == domain.BookingStateSelectingDoctor ||
		s.draft.State == domain.BookingStateSelectingPatient {
		// Doctor -> slot is not a user-visible transition, only data
		// availability; the resolver run below fills the list.
		s.draft.State = domain.BookingStateSelectingSlot
	}

	generation := s.draft.Generation
	date := s.draft.Date
	s.mu.Unlock()

	return s.resolveSlots(ctx, doctorID, date, generation)
}

func (s *BookingService) SelectDate(ctx context.Context, date json_types.Date) (domain.BookingDraft, error) {
	// The picker disables past dates; guard anyway.
	if date.Date.Before(utils.StartCurrentDay(time.Now().UTC())) {
		s.notifier.Error("Please pick a date in the future.", false)
		return s.Current(), domain.ErrValidation
	}

	s.mu.Lock()

	s.draft.Date = &date
	s.draft.Generation++

	generation := s.draft.Generation
	doctorID := s.draft.DoctorID
	s.mu.Unlock()

	return s.resolveSlots(ctx, doctorID, &date, generation)
}

// resolveSlots re-runs the availability resolver for the given selection and
// stores the result unless the selection has moved on meanwhile.
func (s *BookingService) resolveSlots(ctx context.Context, doctorID int64, date *json_types.Date, generation uint64) (domain.BookingDraft, error) {
	slots, err := s.resolver.Resolve(ctx, doctorID, date)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.draft.Generation {
		s.logger.Debug("booking.slots.stale_discarded", out.LogFields{
			"doctorId":   doctorID,
			"generation": generation,
			"current":    s.draft.Generation,
		})
		return s.draft, domain.ErrStaleResolution
	}

	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return s.draft, err
		}
		// Failed fetch: list stays empty, user is notified, no retry is
		// scheduled.
		s.notifier.Error("Failed to fetch available slots. Please try again.", true)
		s.logger.Error("booking.slots.resolve_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return s.draft, nil
	}

	s.slots = slots
	return s.draft, nil
}

func (s *BookingService) SelectSlot(ctx context.Context, slotKey string) (domain.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, slot := range s.slots {
		if slot.Key() == slotKey {
			s.draft.SlotKey = slotKey
			return s.draft, nil
		}
	}

	s.notifier.Error("Selected time slot is no longer available.", false)
	return s.draft, domain.ErrValidation
}

func (s *BookingService) Submit(ctx context.Context) (domain.BookingDraft, error) {
	s.mu.Lock()

	if s.submitting {
		s.mu.Unlock()
		return s.Current(), domain.ErrSubmitInFlight
	}

	if !s.draft.ReadyToSubmit() {
		draft := s.draft
		s.mu.Unlock()
		// Local guard: no network call is made.
		s.notifier.Error("Please select a doctor, patient and time slot.", false)
		return draft, domain.ErrValidation
	}

	// The composite identity splits back into the structured pair the
	// write payload needs.
	slotTime, slotDate, err := domain.SplitSlotKey(s.draft.SlotKey)
	if err != nil {
		draft := s.draft
		s.mu.Unlock()
		s.notifier.Error("Please select a doctor, patient and time slot.", false)
		return draft, domain.ErrValidation
	}

	req := domain.BookingRequest{
		PatientID: s.draft.PatientID,
		DoctorID:  s.draft.DoctorID,
		Date:      slotDate,
		Time:      slotTime,
	}
	s.draft.State = domain.BookingStateSubmitting
	s.submitting = true
	s.mu.Unlock()

	submitErr := s.backend.BookAppointment(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false

	if submitErr != nil {
		// Inputs stay intact so the user can resubmit without
		// re-selecting.
		s.draft.State = domain.BookingStateSelectingSlot
		if errors.Is(submitErr, domain.ErrUnauthorized) {
			return s.draft, submitErr
		}
		s.notifier.Error("Failed to book appointment. Please try again.", true)
		s.logger.Error("booking.submit.failed", out.LogFields{
			"doctorId":  req.DoctorID,
			"patientId": req.PatientID,
			"error":     submitErr.Error(),
		})
		return s.draft, submitErr
	}

	s.notifier.Success("Appointment booked successfully!")
	s.logger.Info("booking.submit.done", out.LogFields{
		"doctorId":  req.DoctorID,
		"patientId": req.PatientID,
		"date":      req.Date.String(),
		"time":      req.Time.String(),
	})

	s.draft = domain.BookingDraft{
		State:      domain.BookingStateSuccess,
		Generation: s.draft.Generation,
	}
	s.slots = nil

	return s.draft, nil
}

func (s *BookingService) Current() domain.BookingDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *BookingService) AvailableSlots() []domain.AvailabilitySlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := make([]domain.AvailabilitySlot, len(s.slots))
	copy(slots, s.slots)
	return slots
}

// Reset clears the draft, used when the operator navigates away.
func (s *BookingService) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = domain.BookingDraft{
		State:      domain.BookingStateSelectingPatient,
		Generation: s.draft.Generation + 1,
	}
	s.slots = nil
	s.submitting = false
}
