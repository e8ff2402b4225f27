// Package entity holds the storefront domain objects: catalog items, carts and caller roles.
package entity

import "slices"

// Role is carried in access tokens and gates the catalog write routes.
type Role string

const (
	// RoleUser may manage its own cart.
	RoleUser Role = "user"
	// RoleAdmin may also create, update and delete catalog items.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a role the storefront issues.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is the role set of one caller.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings renders the set for the token claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings parses token claims. Unknown roles are dropped rather than rejected.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
