package models

import (
	"time"

	"github.com/Gobusters/ectolinq"
)

// Supplier roles recognised when resolving label identities.
const (
	SupplierRoleManufacturer = "manufacturer"
	SupplierRoleImporter     = "importer"
)

// Supplier is a tenant-owned supplier record. A supplier can be tagged with
// one or more roles; role tags are only consulted as the last step of
// identity resolution.
type Supplier struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasRole reports whether the supplier is tagged with the given role.
func (s *Supplier) HasRole(role string) bool {
	return ectolinq.Contains(s.Roles, role)
}
