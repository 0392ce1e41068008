package repository

import (
	"fmt"

	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"

	"github.com/spf13/cast"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// Top-level service fields an admin may set through the mutation gateway.
var serviceFields = map[string]bool{
	"name":     true,
	"icon":     true,
	"category": true,
}

type PBCatalogRepo struct {
	app pbCore.App
}

func NewCatalogRepo(app pbCore.App) *PBCatalogRepo {
	return &PBCatalogRepo{app: app}
}

// Mapping helper: Record -> Domain Model.
// Missing plans become an empty sequence and a blank category defaults to
// "Other", so readers always see a fully-formed Service.
func (r *PBCatalogRepo) toDomain(record *pbCore.Record) domain.Service {
	category := record.GetString("category")
	if category == "" {
		category = domain.DefaultCategory
	}

	plans := []domain.Plan{}
	// A malformed or absent plans field materializes as no plans.
	_ = record.UnmarshalJSONField("plans", &plans)
	if plans == nil {
		plans = []domain.Plan{}
	}

	return domain.Service{
		ID:        record.Id,
		Name:      record.GetString("name"),
		Icon:      record.GetString("icon"),
		Category:  category,
		Plans:     plans,
		UpdatedAt: record.GetString("updated"),
	}
}

// ListServices materializes the full collection in creation order, the
// store's natural enumeration order.
func (r *PBCatalogRepo) ListServices() ([]domain.Service, error) {
	records, err := r.app.FindRecordsByFilter(domain.ServicesCollection, "", "+created", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	services := make([]domain.Service, 0, len(records))
	for _, record := range records {
		services = append(services, r.toDomain(record))
	}
	return services, nil
}

// CreateService inserts an empty service shell. The store assigns the id
// and timestamps.
func (r *PBCatalogRepo) CreateService() (*domain.Service, error) {
	collection, err := r.app.FindCollectionByNameOrId(domain.ServicesCollection)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	record := pbCore.NewRecord(collection)
	record.Set("name", "")
	record.Set("icon", "")
	record.Set("plans", []domain.Plan{})

	if err := r.app.Save(record); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	created := r.toDomain(record)
	return &created, nil
}

func (r *PBCatalogRepo) DeleteService(id string) error {
	record, err := r.app.FindRecordById(domain.ServicesCollection, id)
	if err != nil {
		return fmt.Errorf("delete service %s: %w", id, err)
	}
	if err := r.app.Delete(record); err != nil {
		return fmt.Errorf("delete service %s: %w", id, err)
	}
	return nil
}

// UpdateServiceField sets one whitelisted top-level field. The autodate
// "updated" column refreshes on save, so every mutation bumps the
// service timestamp.
func (r *PBCatalogRepo) UpdateServiceField(id, field string, value any) error {
	if !serviceFields[field] {
		return fmt.Errorf("update service %s: %q: %w", id, field, domain.ErrUnknownField)
	}

	record, err := r.app.FindRecordById(domain.ServicesCollection, id)
	if err != nil {
		return fmt.Errorf("update service %s: %w", id, err)
	}

	record.Set(field, cast.ToString(value))

	if err := r.app.Save(record); err != nil {
		return fmt.Errorf("update service %s: %w", id, err)
	}
	return nil
}

// ReplacePlans rewrites the whole plans array in a single document write.
func (r *PBCatalogRepo) ReplacePlans(id string, plans []domain.Plan) error {
	record, err := r.app.FindRecordById(domain.ServicesCollection, id)
	if err != nil {
		return fmt.Errorf("replace plans of %s: %w", id, err)
	}

	if plans == nil {
		plans = []domain.Plan{}
	}
	record.Set("plans", plans)

	if err := r.app.Save(record); err != nil {
		return fmt.Errorf("replace plans of %s: %w", id, err)
	}
	return nil
}
