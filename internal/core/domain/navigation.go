package domain

// NavAction is one entry of the role-gated navigation surface. The set is
// closed: a role sees exactly the actions its table row lists, nothing else.
// This gating is presentation only, the backend authorizes every mutation
// independently.
type NavAction string

const (
	NavViewAppointments NavAction = "view_appointments"
	NavBookAppointment  NavAction = "book_appointment"
	NavViewDoctors      NavAction = "view_doctors"
	NavManageDoctors    NavAction = "manage_doctors"
	NavManagePatients   NavAction = "manage_patients"
	NavManageSchedule   NavAction = "manage_schedule"
)
