package domain

import "time"

// Role is one of a closed set of role identifiers. Roles are seeded once and
// never created at runtime.
type Role string

const (
	RoleSuperAdmin       Role = "SUPER_ADMIN"
	RoleAdmin            Role = "ADMIN"
	RoleInventoryManager Role = "INVENTORY_MANAGER"
	RoleCustomer         Role = "CUSTOMER"
	RoleGuest            Role = "GUEST"
)

// AllRoles enumerates every valid role.
var AllRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleInventoryManager, RoleCustomer, RoleGuest}

// ValidRole reports whether name is a member of the closed role set.
func ValidRole(name string) bool {
	for _, r := range AllRoles {
		if string(r) == name {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether any of held is present in allowed.
func HasAnyRole(held []string, allowed ...Role) bool {
	for _, h := range held {
		for _, a := range allowed {
			if h == string(a) {
				return true
			}
		}
	}
	return false
}

// AdminRoles can manage any user's data.
var AdminRoles = []Role{RoleSuperAdmin, RoleAdmin}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Roles        []string  `json:"roles,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session is a persisted refresh-token session. The refresh token itself is
// stored as a SHA-256 digest.
type Session struct {
	ID               string    `json:"id"`
	UserID           int64     `json:"userId"`
	RefreshTokenHash string    `json:"-"`
	IP               string    `json:"ip,omitempty"`
	UserAgent        string    `json:"userAgent,omitempty"`
	ExpiresAt        time.Time `json:"expiresAt"`
	CreatedAt        time.Time `json:"createdAt"`
}
