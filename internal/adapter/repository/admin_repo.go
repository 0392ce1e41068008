package repository

import (
	"fmt"

	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// DefaultExchangeRate converts USD sell prices to LBP when the record
// does not carry one.
const DefaultExchangeRate = 89500

type PBAdminRepo struct {
	app pbCore.App
}

func NewAdminRepo(app pbCore.App) *PBAdminRepo {
	return &PBAdminRepo{app: app}
}

// Config reads the admin document once. A missing document maps to
// ErrAdminNotConfigured so callers can tell "password not set" apart
// from a wrong-password mismatch.
func (r *PBAdminRepo) Config() (*domain.AdminConfig, error) {
	records, err := r.app.FindRecordsByFilter(domain.AdminCollection, "", "-created", 1, 0)
	if err != nil {
		return nil, fmt.Errorf("read admin config: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrAdminNotConfigured
	}

	record := records[0]
	cfg := &domain.AdminConfig{
		Password:     record.GetString("password"),
		TokenSecret:  record.GetString("token_secret"),
		ExchangeRate: record.GetFloat("exchange_rate"),
	}
	if cfg.ExchangeRate == 0 {
		cfg.ExchangeRate = DefaultExchangeRate
	}
	return cfg, nil
}
