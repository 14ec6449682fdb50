// Package models contains the domain structures of the portal: users,
// cafeteria meals and orders, events with signups and news posts.
// The structs are shared between the business layer and the storage layer.
package models

// User roles. The set is closed: every account is either an administrator
// or a student.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User represents a portal account. Users are created by seeding or by an
// administrator and are deactivated instead of deleted.
type User struct {
	UID          string // Opaque identifier (UUID)
	Email        string // Unique, used as the login key
	Name         string // Display name
	Role         string // RoleAdmin or RoleStudent
	PasswordHash string // bcrypt digest
	Active       bool   // Inactive users cannot log in
}
