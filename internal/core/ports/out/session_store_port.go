package out

import "context"

// SessionRecord mirrors the four fixed keys of durable client storage.
// All four are written on login and cleared together on logout.
type SessionRecord struct {
	Token  string `json:"token"`
	Email  string `json:"userEmail"`
	Role   string `json:"userRole"`
	UserID string `json:"userId"`
}

func (r SessionRecord) Empty() bool {
	return r.Token == "" && r.Email == "" && r.Role == "" && r.UserID == ""
}

type SessionStorePort interface {
	// Load returns the persisted record; a missing store reads as empty,
	// not as an error.
	Load(ctx context.Context) (SessionRecord, error)
	Save(ctx context.Context, record SessionRecord) error
	Clear(ctx context.Context) error
}
