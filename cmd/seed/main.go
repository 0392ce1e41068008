package main

import (
	"fmt"
	"log"

	_ "github.com/AdamAbdallah1/cedarstech-pricelist/migrations"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Local development seeder. Sets a known back-office password and adds
// a couple of extra demo services on top of the migration seed.
func main() {
	app := pocketbase.New()

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		if err := seedAdminPassword(app); err != nil {
			return err
		}
		if err := seedDemoServices(app); err != nil {
			return err
		}
		return nil
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func seedAdminPassword(app core.App) error {
	records, err := app.FindRecordsByFilter("admin", "", "", 1, 0)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("admin record missing, run migrations first")
	}

	record := records[0]
	if record.GetString("password") != "" {
		fmt.Println("Admin password already set")
		return nil
	}

	record.Set("password", "changeme")
	if err := app.Save(record); err != nil {
		return err
	}
	fmt.Println("Admin password set to 'changeme'")
	return nil
}

func seedDemoServices(app core.App) error {
	collection, err := app.FindCollectionByNameOrId("services")
	if err != nil {
		return err
	}

	demos := []map[string]any{
		{
			"name":     "Shahid VIP",
			"icon":     "📺",
			"category": "Streaming",
			"plans": []map[string]any{
				{"label": "VIP", "costPrice": 4, "sellPrice": 7, "duration": "1 Month"},
				{"label": "VIP Sport", "costPrice": 9, "sellPrice": 14, "duration": "1 Month"},
			},
		},
		{
			"name":     "Canva Pro",
			"icon":     "🎨",
			"category": "Design",
			"plans": []map[string]any{
				{"label": "Pro", "costPrice": 2, "sellPrice": 5, "duration": "12 Months", "type": "Shared"},
			},
		},
	}

	for _, data := range demos {
		existing, _ := app.FindRecordsByFilter(
			"services",
			"name = {:name}",
			"", 1, 0,
			dbx.Params{"name": data["name"]},
		)
		if len(existing) > 0 {
			fmt.Printf("Service already exists: %s\n", existing[0].Id)
			continue
		}

		record := core.NewRecord(collection)
		for key, value := range data {
			record.Set(key, value)
		}
		if err := app.Save(record); err != nil {
			return err
		}
		fmt.Printf("Created service: %s (%s)\n", record.GetString("name"), record.Id)
	}
	return nil
}
