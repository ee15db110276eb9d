package model

import "strings"

// Role is the closed set of roles the front-end routes on.
type Role string

const (
	RolePropertyManager Role = "PROPERTY_MANAGER"
	RoleTenant          Role = "TENANT"
	RoleServicePro      Role = "SERVICE_PRO"
	RoleAdmin           Role = "ADMIN"
	RoleUnknown         Role = "UNKNOWN"
)

var roleAliases = map[string]Role{
	"PROPERTY_MANAGER": RolePropertyManager,
	"PROPERTYMANAGER":  RolePropertyManager,
	"MANAGER":          RolePropertyManager,
	"LANDLORD":         RolePropertyManager,
	"PM":               RolePropertyManager,
	"TENANT":           RoleTenant,
	"RENTER":           RoleTenant,
	"SERVICE_PRO":      RoleServicePro,
	"SERVICEPRO":       RoleServicePro,
	"SERVICE_PROVIDER": RoleServicePro,
	"VENDOR":           RoleServicePro,
	"ADMIN":            RoleAdmin,
}

// NormalizeRole maps a raw upstream role string onto Role.
// Matching ignores case and treats dashes and spaces as underscores.
func NormalizeRole(raw string) Role {
	key := strings.ToUpper(strings.TrimSpace(raw))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if role, ok := roleAliases[key]; ok {
		return role
	}
	return RoleUnknown
}

// User is the authenticated user as reported by the upstream "current user" call.
// It is never modified locally; a fresh copy is fetched instead.
type User struct {
	UserID          string `json:"userId"`
	Email           string `json:"email"`
	Role            Role   `json:"role"`
	FullName        string `json:"fullName"`
	IsEmailVerified bool   `json:"isEmailVerified"`
	IsActive        bool   `json:"isActive"`
}

// UserPayload is the upstream wire shape. Some endpoints send "id" instead of "userId".
type UserPayload struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	FullName        string `json:"fullName"`
	IsEmailVerified bool   `json:"isEmailVerified"`
	IsActive        bool   `json:"isActive"`
}

// ToUser normalises the payload, including its role.
func (p UserPayload) ToUser() *User {
	id := p.UserID
	if id == "" {
		id = p.ID
	}
	return &User{
		UserID:          id,
		Email:           p.Email,
		Role:            NormalizeRole(p.Role),
		FullName:        p.FullName,
		IsEmailVerified: p.IsEmailVerified,
		IsActive:        p.IsActive,
	}
}
