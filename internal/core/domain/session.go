package domain

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleDoctor  Role = "Medico"
	RolePatient Role = "Paciente"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

// Session is the identity of the single operator of this gateway.
// Invariant: IsAuthenticated is true iff Token and Email are both non-empty.
// The session is created by login or by rehydration from durable storage and
// mutated only through login/logout; a 401 from the backend destroys it.
type Session struct {
	IsAuthenticated bool
	Email           string
	Role            Role
	UserID          string
	Token           string
}

// EmptySession is the state after logout or a detected unauthorized response.
func EmptySession() Session {
	return Session{}
}

// SessionFromRecord applies the authentication invariant to persisted fields.
// Partially populated storage (token without email, or the reverse) must not
// produce an authenticated session.
func SessionFromRecord(token, email, role, userID string) Session {
	if token == "" || email == "" {
		return EmptySession()
	}

	// The persisted role is trusted as given, no server round-trip.
	return Session{
		IsAuthenticated: true,
		Email:           email,
		Role:            Role(role),
		UserID:          userID,
		Token:           token,
	}
}
