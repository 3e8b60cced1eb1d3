// Package models defines the entities persisted by weightkeeper: accounts,
// goals, weight entries and the calendar day type they share.
package models

// Role is the label stored with an account. It is derived once, at
// registration, and never re-derived.
type Role string

const (
	RoleAdmin Role = "admin"
	RolePaid  Role = "paid"
	RoleUser  Role = "user"
)

// Registration codes that map to elevated roles.
const (
	AdminRoleCode = "537"
	PaidRoleCode  = "1237"
)

// RoleFromCode maps a registration code to a Role. Unknown codes, including
// the empty string, yield RoleUser.
func RoleFromCode(code string) Role {
	switch code {
	case AdminRoleCode:
		return RoleAdmin
	case PaidRoleCode:
		return RolePaid
	default:
		return RoleUser
	}
}

// Account is a registered identity.
type Account struct {
	// ID is assigned by the database on insert.
	ID int64

	// Username is unique and compared case-sensitively.
	Username string

	// PasswordHash is the opaque output of the credential hasher.
	PasswordHash string

	Phone string
	Role  Role
}
