package access

import (
	"strings"
)

// Role is a requirement string as written in policies.
type Role string

const (
	Admin                   Role = "admin"
	Customer                Role = "customer"
	WarehouseManager        Role = "warehouse manager"
	SupplyManager           Role = "Supply Manager"
	GeneralManager          Role = "General Manager"
	OrderProcessingEmployee Role = "Order processing employee"
	PackagingEmployee       Role = "Packaging employee"
	ShippingEmployee        Role = "Shipping employee"
	ShippingManager         Role = "Shipping Manager"
	Supplier                Role = "Supplier"
)

func (r Role) normalized() string {
	return strings.ToLower(strings.TrimSpace(string(r)))
}

// Actor is the acting identity of one request. It is immutable.
type Actor struct {
	userID string
	roles  []string
	admin  bool
}

// NewActor normalizes raw role strings (trim, lower-case, blanks dropped)
// and precomputes the admin capability.
func NewActor(userID string, rawRoles []string) Actor {
	a := Actor{
		userID: strings.TrimSpace(userID),
		roles:  make([]string, 0, len(rawRoles)),
	}
	for _, r := range rawRoles {
		if r = strings.ToLower(strings.TrimSpace(r)); r != "" {
			a.roles = append(a.roles, r)
		}
	}
	a.admin = a.holds(Admin.normalized())
	return a
}

// Anonymous is an unauthenticated actor without roles.
func Anonymous() Actor {
	return Actor{}
}

func (a Actor) UserID() string {
	return a.userID
}

// Roles returns the normalized role strings.
func (a Actor) Roles() []string {
	roles := make([]string, len(a.roles))
	copy(roles, a.roles)
	return roles
}

func (a Actor) IsAuthenticated() bool {
	return a.userID != ""
}

func (a Actor) IsAdmin() bool {
	return a.admin
}

// Has reports whether any held role equals or contains role.
func (a Actor) Has(role Role) bool {
	return a.holds(role.normalized())
}

func (a Actor) holds(needle string) bool {
	if needle == "" {
		return false
	}
	for _, r := range a.roles {
		if r == needle || strings.Contains(r, needle) {
			return true
		}
	}
	return false
}
