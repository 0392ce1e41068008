package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("services"); err == nil {
			return nil
		}

		services := core.NewBaseCollection("services")

		services.Fields.Add(&core.TextField{
			Name: "name",
		})

		// Emoji or short glyph shown next to the name
		services.Fields.Add(&core.TextField{
			Name: "icon",
		})

		services.Fields.Add(&core.TextField{
			Name: "category",
		})

		// Pricing plans live as a single document field. The whole
		// array is rewritten on every plan mutation.
		services.Fields.Add(&core.JSONField{
			Name: "plans",
		})

		services.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		services.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		return app.Save(services)

	}, func(app core.App) error {
		if collection, err := app.FindCollectionByNameOrId("services"); err == nil {
			return app.Delete(collection)
		}
		return nil
	})
}
