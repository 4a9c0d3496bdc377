package services

import (
	"context"
	"sync"

	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/json_types"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/ports/out"
)

// ---------- Logger ----------

type nopLogger struct{}

func (nopLogger) Debug(string, out.LogFields)            {}
func (nopLogger) Info(string, out.LogFields)             {}
func (nopLogger) Warn(string, out.LogFields)             {}
func (nopLogger) Error(string, out.LogFields)            {}
func (l nopLogger) WithFields(out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(string) out.LoggerPort        { return l }

// ---------- Session store ----------

type memorySessionStore struct {
	mu     sync.Mutex
	record out.SessionRecord
	saved  int
	cleared int
}

func (s *memorySessionStore) Load(ctx context.Context) (out.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record, nil
}

func (s *memorySessionStore) Save(ctx context.Context, record out.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = record
	s.saved++
	return nil
}

func (s *memorySessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = out.SessionRecord{}
	s.cleared++
	return nil
}

// ---------- Session use case ----------

type fakeSession struct {
	session domain.Session
}

func (f *fakeSession) Rehydrate(ctx context.Context) (domain.Session, error) {
	return f.session, nil
}

func (f *fakeSession) Login(ctx context.Context, email, token, role, userID string) (domain.Session, error) {
	f.session = domain.SessionFromRecord(token, email, role, userID)
	return f.session, nil
}

func (f *fakeSession) Logout(ctx context.Context) error {
	f.session = domain.EmptySession()
	return nil
}

func (f *fakeSession) Current() domain.Session { return f.session }

// ---------- Backend port ----------

// fakeBackend counts every call and delegates to optional function fields.
type fakeBackend struct {
	mu    sync.Mutex
	calls map[string]int

	listDoctorsFn     func() ([]domain.Doctor, error)
	listPatientsFn    func() ([]domain.Patient, error)
	listSlotsFn       func(doctorID int64) ([]domain.AvailabilitySlot, error)
	listAppointmentsFn func() ([]domain.Appointment, error)
	bookFn            func(req domain.BookingRequest) error
	cancelFn          func(appointmentID int64) error
	listWindowsFn     func() ([]domain.ScheduleWindow, error)
	createWindowFn    func(input domain.ScheduleWindowInput) error

	bookedRequests []domain.BookingRequest
	createdWindows []domain.ScheduleWindowInput
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{calls: make(map[string]int)}
}

func (f *fakeBackend) count(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeBackend) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeBackend) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	f.count("ListDoctors")
	if f.listDoctorsFn != nil {
		return f.listDoctorsFn()
	}
	return []domain.Doctor{}, nil
}

func (f *fakeBackend) CreateDoctor(ctx context.Context, input domain.DoctorInput) error {
	f.count("CreateDoctor")
	return nil
}

func (f *fakeBackend) UpdateDoctor(ctx context.Context, doctorID int64, input domain.DoctorInput) error {
	f.count("UpdateDoctor")
	return nil
}

func (f *fakeBackend) DeleteDoctor(ctx context.Context, doctorID int64) error {
	f.count("DeleteDoctor")
	return nil
}

func (f *fakeBackend) ListDoctorSlots(ctx context.Context, doctorID int64) ([]domain.AvailabilitySlot, error) {
	f.count("ListDoctorSlots")
	if f.listSlotsFn != nil {
		return f.listSlotsFn(doctorID)
	}
	return []domain.AvailabilitySlot{}, nil
}

func (f *fakeBackend) ListDoctorAppointments(ctx context.Context, doctorID int64) ([]domain.Appointment, error) {
	f.count("ListDoctorAppointments")
	return []domain.Appointment{}, nil
}

func (f *fakeBackend) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	f.count("ListPatients")
	if f.listPatientsFn != nil {
		return f.listPatientsFn()
	}
	return []domain.Patient{}, nil
}

func (f *fakeBackend) CreatePatient(ctx context.Context, input domain.PatientInput) error {
	f.count("CreatePatient")
	return nil
}

func (f *fakeBackend) UpdatePatient(ctx context.Context, patientID int64, input domain.PatientInput) error {
	f.count("UpdatePatient")
	return nil
}

func (f *fakeBackend) DeletePatient(ctx context.Context, patientID int64) error {
	f.count("DeletePatient")
	return nil
}

func (f *fakeBackend) ListPatientAppointments(ctx context.Context, patientID int64) ([]domain.Appointment, error) {
	f.count("ListPatientAppointments")
	return []domain.Appointment{}, nil
}

func (f *fakeBackend) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	f.count("ListAppointments")
	if f.listAppointmentsFn != nil {
		return f.listAppointmentsFn()
	}
	return []domain.Appointment{}, nil
}

func (f *fakeBackend) BookAppointment(ctx context.Context, req domain.BookingRequest) error {
	f.count("BookAppointment")
	f.mu.Lock()
	f.bookedRequests = append(f.bookedRequests, req)
	f.mu.Unlock()
	if f.bookFn != nil {
		return f.bookFn(req)
	}
	return nil
}

func (f *fakeBackend) CancelAppointment(ctx context.Context, appointmentID int64) error {
	f.count("CancelAppointment")
	if f.cancelFn != nil {
		return f.cancelFn(appointmentID)
	}
	return nil
}

func (f *fakeBackend) ListScheduleWindows(ctx context.Context) ([]domain.ScheduleWindow, error) {
	f.count("ListScheduleWindows")
	if f.listWindowsFn != nil {
		return f.listWindowsFn()
	}
	return []domain.ScheduleWindow{}, nil
}

func (f *fakeBackend) CreateScheduleWindow(ctx context.Context, input domain.ScheduleWindowInput) error {
	f.count("CreateScheduleWindow")
	f.mu.Lock()
	f.createdWindows = append(f.createdWindows, input)
	f.mu.Unlock()
	if f.createWindowFn != nil {
		return f.createWindowFn(input)
	}
	return nil
}

// ---------- Notifier ----------

type fakeNotifier struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

func (f *fakeNotifier) Success(message string) {
	f.push(domain.NotificationLevelSuccess, message, false)
}

func (f *fakeNotifier) Error(message string, retryable bool) {
	f.push(domain.NotificationLevelError, message, retryable)
}

func (f *fakeNotifier) Info(message string) {
	f.push(domain.NotificationLevelInfo, message, false)
}

func (f *fakeNotifier) Drain() []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	drained := f.notifications
	f.notifications = nil
	return drained
}

func (f *fakeNotifier) push(level domain.NotificationLevel, message string, retryable bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, domain.Notification{
		Level:     level,
		Message:   message,
		Retryable: retryable,
	})
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notifications)
}

// ---------- Cache ----------

type mapCache struct {
	mu    sync.Mutex
	slots map[int64][]domain.AvailabilitySlot
}

func newMapCache() *mapCache {
	return &mapCache{slots: make(map[int64][]domain.AvailabilitySlot)}
}

func (c *mapCache) GetSlots(ctx context.Context, doctorID int64) ([]domain.AvailabilitySlot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	slots, ok := c.slots[doctorID]
	return slots, ok
}

func (c *mapCache) StoreSlots(ctx context.Context, doctorID int64, slots []domain.AvailabilitySlot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots[doctorID] = slots
}

func (c *mapCache) InvalidateSlots(ctx context.Context, doctorID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.slots, doctorID)
}

// ---------- Slot resolver ----------

// fakeResolver serves scripted slots per doctor and can block a doctor's
// resolution until released, to exercise the stale-response guard.
type fakeResolver struct {
	mu           sync.Mutex
	slots        map[int64][]domain.AvailabilitySlot
	gates        map[int64]*resolveGate
	resolveCalls int
}

type resolveGate struct {
	entered chan struct{}
	release chan struct{}
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		slots: make(map[int64][]domain.AvailabilitySlot),
		gates: make(map[int64]*resolveGate),
	}
}

// gateDoctor makes the next resolution for this doctor block until release
// is closed; entered fires when the resolution has started.
func (f *fakeResolver) gateDoctor(doctorID int64) *resolveGate {
	gate := &resolveGate{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	f.mu.Lock()
	f.gates[doctorID] = gate
	f.mu.Unlock()
	return gate
}

func (f *fakeResolver) Resolve(ctx context.Context, doctorID int64, date *json_types.Date) ([]domain.AvailabilitySlot, error) {
	f.mu.Lock()
	f.resolveCalls++
	gate := f.gates[doctorID]
	slots := f.slots[doctorID]
	f.mu.Unlock()

	if gate != nil {
		gate.entered <- struct{}{}
		<-gate.release
	}

	return FilterSlotsByDate(slots, date), nil
}

func (f *fakeResolver) InvalidateDoctor(ctx context.Context, doctorID int64) {}

func (f *fakeResolver) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resolveCalls
}

// ---------- Slot helpers ----------

func mustSlot(t string, d string) domain.AvailabilitySlot {
	startTime, _ := json_types.ParseTimeOfDay(t)
	date, _ := json_types.ParseDate(d)
	return domain.AvailabilitySlot{AvailableDate: date, StartTime: startTime}
}
