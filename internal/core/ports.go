package core

import "errors"

// Remote collection names at the document-store boundary.
const (
	ServicesCollection = "services"
	AdminCollection    = "admin"
)

// ErrUnknownField is returned when a mutation names a top-level service
// field outside the recognized set. There is no server-side schema
// enforcement beyond this caller-side whitelist.
var ErrUnknownField = errors.New("unknown service field")

// ErrAdminNotConfigured is returned when the well-known admin document
// does not exist yet.
var ErrAdminNotConfigured = errors.New("admin document not found")

// CatalogRepository is the mutation gateway plus the snapshot read used
// by the catalog store. Plan-level mutations always rewrite the whole
// plans array of a service; that keeps each mutation a single atomic
// document write, at the accepted cost of lost updates under concurrent
// multi-admin editing.
type CatalogRepository interface {
	// ListServices materializes every service document in the store's
	// natural enumeration order.
	ListServices() ([]Service, error)

	// CreateService inserts a new empty service (blank name/icon, no
	// plans) and returns it with the store-assigned id and timestamp.
	CreateService() (*Service, error)

	// DeleteService removes the service and all nested plans.
	DeleteService(id string) error

	// UpdateServiceField sets one recognized top-level field (name,
	// icon or category) and refreshes the timestamp.
	UpdateServiceField(id, field string, value any) error

	// ReplacePlans rewrites the service's entire plans sequence.
	ReplacePlans(id string, plans []Plan) error
}

// AdminConfig is the single well-known admin document: the shared login
// secret plus display configuration.
type AdminConfig struct {
	Password     string
	TokenSecret  string
	ExchangeRate float64
}

// AdminRepository reads the admin document once per call (no caching,
// so a password change takes effect on the next login attempt).
type AdminRepository interface {
	Config() (*AdminConfig, error)
}
