package domain

import "testing"

func TestBookingDraftReadyToSubmit(t *testing.T) {
	cases := []struct {
		name  string
		draft BookingDraft
		ready bool
	}{
		{"all selected", BookingDraft{PatientID: 42, DoctorID: 7, SlotKey: "09:00:00-2030-09-12"}, true},
		{"missing slot", BookingDraft{PatientID: 42, DoctorID: 7}, false},
		{"missing doctor", BookingDraft{PatientID: 42, SlotKey: "09:00:00-2030-09-12"}, false},
		{"missing patient", BookingDraft{DoctorID: 7, SlotKey: "09:00:00-2030-09-12"}, false},
		{"empty", BookingDraft{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.draft.ReadyToSubmit() != tc.ready {
				t.Errorf("ReadyToSubmit = %v, expected %v", tc.draft.ReadyToSubmit(), tc.ready)
			}
		})
	}
}
