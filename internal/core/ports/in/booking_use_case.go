package in

import (
	"context"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
)

type SlotResolverUseCase interface {
	// Resolve fetches the bookable slots of a doctor. A zero doctorID
	// yields an empty list without a backend call. When date is non-nil
	// only entries whose data_disponivel matches it exactly survive.
	Resolve(ctx context.Context, doctorID int64, date *json_types.Date) ([]domain.AvailabilitySlot, error)

	// InvalidateDoctor drops any cached slots for the doctor, used when an
	// appointment event arrives from the broker.
	InvalidateDoctor(ctx context.Context, doctorID int64)
}

// BookingUseCase drives the ordered selection sequence
// patient -> doctor -> slot -> submit. Each mutation returns the resulting
// draft so the surface can render the workflow state verbatim.
type BookingUseCase interface {
	Start(ctx context.Context) (domain.BookingDraft, error)
	SelectPatient(ctx context.Context, patientID int64) (domain.BookingDraft, error)
	SelectDoctor(ctx context.Context, doctorID int64) (domain.BookingDraft, error)
	SelectDate(ctx context.Context, date json_types.Date) (domain.BookingDraft, error)
	SelectSlot(ctx context.Context, slotKey string) (domain.BookingDraft, error)
	Submit(ctx context.Context) (domain.BookingDraft, error)

	Current() domain.BookingDraft
	AvailableSlots() []domain.AvailabilitySlot
	Reset(ctx context.Context)
}
