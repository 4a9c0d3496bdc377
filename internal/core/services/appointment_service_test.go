package services

import (
	"context"
	"errors"
	"testing"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

func TestAppointmentCancelRefetchesList(t *testing.T) {
	backend := newFakeBackend()
	backend.listAppointmentsFn = func() ([]domain.Appointment, error) {
		return []domain.Appointment{
			{ID: 2, Status: domain.AppointmentStatusScheduled},
		}, nil
	}
	notifier := &fakeNotifier{}
	service := NewAppointmentService(backend, notifier, nopLogger{})

	appointments, err := service.Cancel(context.Background(), 1)
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if backend.callCount("CancelAppointment") != 1 {
		t.Error("expected one cancel call")
	}
	// The list is always re-fetched, never patched in place.
	if backend.callCount("ListAppointments") != 1 {
		t.Error("expected the list to be re-fetched after cancelling")
	}
	if len(appointments) != 1 || appointments[0].ID != 2 {
		t.Errorf("unexpected refreshed list: %+v", appointments)
	}

	notifications := notifier.Drain()
	if len(notifications) != 1 || notifications[0].Level != domain.NotificationLevelSuccess {
		t.Errorf("expected one success notification, got %+v", notifications)
	}
}

func TestAppointmentCancelFailure(t *testing.T) {
	backend := newFakeBackend()
	backend.cancelFn = func(int64) error {
		return domain.ErrBackendRejected
	}
	notifier := &fakeNotifier{}
	service := NewAppointmentService(backend, notifier, nopLogger{})

	if _, err := service.Cancel(context.Background(), 1); !errors.Is(err, domain.ErrBackendRejected) {
		t.Fatalf("expected ErrBackendRejected, got %v", err)
	}
	if backend.callCount("ListAppointments") != 0 {
		t.Error("failed cancel must not re-fetch the list")
	}

	notifications := notifier.Drain()
	if len(notifications) != 1 || !notifications[0].Retryable {
		t.Errorf("expected one retryable notification, got %+v", notifications)
	}
}

func TestAppointmentListUnauthorizedSkipsNotification(t *testing.T) {
	backend := newFakeBackend()
	backend.listAppointmentsFn = func() ([]domain.Appointment, error) {
		return nil, domain.ErrUnauthorized
	}
	notifier := &fakeNotifier{}
	service := NewAppointmentService(backend, notifier, nopLogger{})

	if _, err := service.List(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	// A 401 becomes a redirect at the surface, not a toast.
	if notifier.count() != 0 {
		t.Errorf("expected no notification, got %d", notifier.count())
	}
}
