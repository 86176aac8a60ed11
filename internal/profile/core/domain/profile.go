package domain

const RoleAdmin = "admin"

// Profile is the logged-in user as resolved from a session token. It is
// resolved per request and passed explicitly to whatever needs it;
// there is no ambient cached copy.
type Profile struct {
	UserID      string
	Email       string
	DisplayName string
	Role        string
}

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
