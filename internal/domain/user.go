package domain

import "time"

// BusinessRole describes how a user participates in the property market.
// It is a display/business classification only and carries no authorization
// weight; route access is decided by Role.
type BusinessRole string

const (
	BusinessRoleSeller BusinessRole = "seller"
	BusinessRoleBuyer  BusinessRole = "buyer"
	BusinessRoleOwner  BusinessRole = "owner"
	BusinessRoleTenant BusinessRole = "tenant"
	BusinessRoleAgent  BusinessRole = "agent"
)

// ParseBusinessRole maps a raw string to a known business role.
func ParseBusinessRole(raw string) (BusinessRole, bool) {
	switch BusinessRole(raw) {
	case BusinessRoleSeller, BusinessRoleBuyer, BusinessRoleOwner, BusinessRoleTenant, BusinessRoleAgent:
		return BusinessRole(raw), true
	}
	return "", false
}

// User is the domain model for platform accounts.
type User struct {
	ID                int64
	Email             string
	PasswordHash      string
	FullName          string
	Phone             *string
	Role              Role
	BusinessRole      BusinessRole
	Verified          bool
	ProfileImageURL   *string
	ResetToken        *string
	ResetTokenExpires *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
