package model

// Principal identifies the authenticated caller on the admin surface.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == "ADMIN"
}
