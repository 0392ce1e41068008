package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
	"github.com/pocketbase/pocketbase/tools/security"
)

func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("admin"); err == nil {
			return nil
		}

		admin := core.NewBaseCollection("admin")

		// Plain back-office password. Set it through the PocketBase
		// dashboard before first login; an empty value keeps the back
		// office locked.
		admin.Fields.Add(&core.TextField{
			Name: "password",
		})

		// HMAC secret for session tokens. Rotating it invalidates
		// every issued session.
		admin.Fields.Add(&core.TextField{
			Name:     "token_secret",
			Required: true,
		})

		// USD to LBP conversion used by the storefront detail view.
		minZero := float64(0)
		admin.Fields.Add(&core.NumberField{
			Name: "exchange_rate",
			Min:  &minZero,
		})

		admin.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		admin.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		if err := app.Save(admin); err != nil {
			return err
		}

		record := core.NewRecord(admin)
		record.Set("password", "")
		record.Set("token_secret", security.RandomString(50))
		record.Set("exchange_rate", 89500)
		return app.Save(record)

	}, func(app core.App) error {
		if collection, err := app.FindCollectionByNameOrId("admin"); err == nil {
			return app.Delete(collection)
		}
		return nil
	})
}
