package in

import (
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
)

type NavigationUseCase interface {
	// Actions returns the closed set of navigation actions visible to a
	// role. Unknown roles see nothing.
	Actions(role domain.Role) []domain.NavAction

	Allows(role domain.Role, action domain.NavAction) bool
}
