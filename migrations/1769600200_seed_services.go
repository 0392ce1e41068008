package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		services, err := app.FindCollectionByNameOrId("services")
		if err != nil {
			return err
		}

		// Skip seeding when the catalog already has content.
		existing, err := app.FindRecordsByFilter("services", "", "", 1, 0)
		if err == nil && len(existing) > 0 {
			return nil
		}

		seed := []map[string]any{
			{
				"name":     "Netflix",
				"icon":     "🎬",
				"category": "Streaming",
				"plans": []map[string]any{
					{"label": "1 Screen", "costPrice": 3, "sellPrice": 5, "duration": "1 Month", "type": "Private"},
					{"label": "4 Screens", "costPrice": 6, "sellPrice": 10, "duration": "1 Month", "type": "Shared"},
				},
			},
			{
				"name":     "Spotify",
				"icon":     "🎵",
				"category": "Music",
				"plans": []map[string]any{
					{"label": "Individual", "costPrice": 4, "sellPrice": 6, "duration": "1 Month", "type": "Private"},
					{"label": "Family", "costPrice": 8, "sellPrice": 12, "duration": "1 Month", "type": "Family"},
				},
			},
			{
				"name":     "NordVPN",
				"icon":     "🔒",
				"category": "VPN",
				"plans": []map[string]any{
					{"label": "Standard", "costPrice": 2.5, "sellPrice": 4, "duration": "1 Month"},
					{"label": "1 Year", "costPrice": 25, "sellPrice": 40, "duration": "12 Months"},
				},
			},
		}

		for _, data := range seed {
			record := core.NewRecord(services)
			for key, value := range data {
				record.Set(key, value)
			}
			if err := app.Save(record); err != nil {
				return err
			}
		}
		return nil

	}, func(app core.App) error {
		records, err := app.FindRecordsByFilter("services", "", "", 0, 0)
		if err != nil {
			return nil
		}
		for _, record := range records {
			if err := app.Delete(record); err != nil {
				return err
			}
		}
		return nil
	})
}
