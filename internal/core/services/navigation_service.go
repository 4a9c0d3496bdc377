package services

import (
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

// navigationTable is the closed role->actions rule set. Admin manages
// everything; a patient books for themselves and sees their own
// appointments; a doctor manages their schedule and reads their own
// appointments, booking-for-self is not exposed.
var navigationTable = map[domain.Role][]domain.NavAction{
	domain.RoleAdmin: {
		domain.NavViewAppointments,
		domain.NavBookAppointment,
		domain.NavViewDoctors,
		domain.NavManageDoctors,
		domain.NavManagePatients,
	},
	domain.RolePatient: {
		domain.NavViewAppointments,
		domain.NavBookAppointment,
		domain.NavViewDoctors,
	},
	domain.RoleDoctor: {
		domain.NavViewAppointments,
		domain.NavViewDoctors,
		domain.NavManageSchedule,
	},
}

type NavigationService struct{}

func NewNavigationService() *NavigationService {
	return &NavigationService{}
}

func (s *NavigationService) Actions(role domain.Role) []domain.NavAction {
	actions, ok := navigationTable[role]
	if !ok {
		return []domain.NavAction{}
	}

	result := make([]domain.NavAction, len(actions))
	copy(result, actions)
	return result
}

func (s *NavigationService) Allows(role domain.Role, action domain.NavAction) bool {
	for _, allowed := range navigationTable[role] {
		if allowed == action {
			return true
		}
	}
	return false
}
