// Package models defines the data types exchanged between the banking API,
// the session layer, and the terminal UI.
package models

// Role is the access level assigned to a user by the backend.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the authenticated user's profile record as returned by the
// /users/me and /auth endpoints.
type User struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        Role   `json:"role"`
	Enabled     bool   `json:"enabled"`
}

// FullName joins first and last name, tolerating either being empty.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// ProfilePatch carries the editable profile fields for PUT /users/me.
type ProfilePatch struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// Apply returns a copy of u with the patch fields replaced.
func (p ProfilePatch) Apply(u User) User {
	u.FirstName = p.FirstName
	u.LastName = p.LastName
	u.Email = p.Email
	u.PhoneNumber = p.PhoneNumber
	return u
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// AuthResult is the payload of a successful login or register call:
// a bearer token plus the identity it belongs to.
type AuthResult struct {
	Token string `json:"token"`
	Type  string `json:"type"`
	User  *User  `json:"user"`
}

// PasswordChange is the request body for PUT /users/me/password.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
