package models

import "time"

// Session is the identity resolved from a verified token. Role comes from the
// current account record, not from the token claim.
type Session struct {
	AccountID string
	Email     string
	Name      string
	Role      Role
	ExpiresAt time.Time
}

func (s *Session) IsPatient() bool {
	return s != nil && s.Role == RolePatient
}

func (s *Session) IsPractitioner() bool {
	return s != nil && s.Role == RolePractitioner
}
