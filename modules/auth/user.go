package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/eapd/pkg/apiclient"
)

// User is an account known to the reference server.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash []byte
	Email        string
	Name         string
	Position     string
	Phone        string
	State        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the public view of u returned by check, login and /me.
func (u *User) Profile() apiclient.Profile {
	return apiclient.Profile{
		ID:       u.ID.String(),
		Email:    u.Email,
		Name:     u.Name,
		Position: u.Position,
		Phone:    u.Phone,
		State:    u.State,
	}
}

// applyProfile copies the editable fields of p onto u. ID is never editable.
func (u *User) applyProfile(p apiclient.Profile) {
	u.Email = p.Email
	u.Name = p.Name
	u.Position = p.Position
	u.Phone = p.Phone
	u.State = p.State
}
