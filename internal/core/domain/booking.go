package domain

import (
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
)

type BookingState string

const (
	BookingStateSelectingPatient BookingState = "selecting_patient"
	BookingStateSelectingDoctor  BookingState = "selecting_doctor"
	BookingStateSelectingSlot    BookingState = "selecting_slot"
	BookingStateSubmitting       BookingState = "submitting"
	BookingStateSuccess          BookingState = "success"
	BookingStateFailed           BookingState = "failed"
)

// BookingDraft is the transient selection state of an in-progress booking.
// Cleared on workflow reset and on successful submission. Generation is
// bumped on every doctor/date change so slot resolutions dispatched for an
// older selection can be recognized as stale and discarded.
type BookingDraft struct {
	State      BookingState     `json:"state"`
	PatientID  int64            `json:"id_paciente,omitempty"`
	DoctorID   int64            `json:"id_medico,omitempty"`
	Date       *json_types.Date `json:"data,omitempty"`
	SlotKey    string           `json:"slot,omitempty"`
	Generation uint64           `json:"-"`
}

// ReadyToSubmit is the submission precondition: doctor, patient and slot all
// chosen. The date is carried inside the slot key.
func (d BookingDraft) ReadyToSubmit() bool {
	return d.DoctorID != 0 && d.PatientID != 0 && d.SlotKey != ""
}
