package user

import "time"

// Role codes for dashboard accounts. The storefront is anonymous;
// users exist only for the admin side.
type RoleCode string

const (
	RoleCodeAdmin RoleCode = "admin"
)

func ParseRoleCode(s string) (RoleCode, error) {
	switch RoleCode(s) {
	case RoleCodeAdmin:
		return RoleCodeAdmin, nil
	default:
		return "", ErrInvalidRoleCode
	}
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	RoleCode     RoleCode
	CreatedAt    time.Time
}
