package models

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdminOps   Role = "admin_ops"
	RoleSuperAdmin Role = "super_admin"
)

// ValidRole reports whether r is one of the three fixed roles.
func ValidRole(r string) bool {
	switch Role(r) {
	case RoleCustomer, RoleAdminOps, RoleSuperAdmin:
		return true
	}
	return false
}

// Profile carries the role for an auth identity. The row is keyed by the
// provider's user id and may not exist yet right after account creation.
type Profile struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"unique;not null" json:"email"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Role      Role   `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
