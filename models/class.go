package models

import "time"

// Role is a user's role inside a class.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the known class roles.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// Class is a course that users enroll in.
type Class struct {
	ClassID   int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Section   string    `json:"section,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Room      string    `json:"room,omitempty"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Enrollment links a user to a class with a role.
type Enrollment struct {
	UserID  int64 `json:"user_id"`
	ClassID int64 `json:"class_id"`
	Role    Role  `json:"role"`
}

// ClassMembership is a class as seen by one of its members.
type ClassMembership struct {
	Class
	Role Role `json:"role"`
}
