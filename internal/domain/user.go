package domain

import "time"

type User struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone,omitempty"`
	Roles         []Role    `json:"roles"`
	DepartmentIDs []int64   `json:"department_ids,omitempty"`
	ClientID      *int64    `json:"client_id,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Actor builds the request-scoped identity for this user.
func (u *User) Actor() *Actor {
	return &Actor{
		ID:            u.ID,
		Username:      u.Username,
		Roles:         NewRoleSet(u.Roles...),
		DepartmentIDs: u.DepartmentIDs,
		ClientID:      u.ClientID,
	}
}
