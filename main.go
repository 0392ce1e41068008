package main

import (
	"log"

	internalApp "github.com/AdamAbdallah1/cedarstech-pricelist/internal/app"
	"github.com/AdamAbdallah1/cedarstech-pricelist/pkg/app"

	_ "github.com/AdamAbdallah1/cedarstech-pricelist/migrations"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
)

func main() {
	pb := pocketbase.New()

	// 1. Migrations
	migratecmd.MustRegister(pb, pb.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	// 2. Dependency wiring
	container := internalApp.NewContainer(pb)

	// 3. Catalog store warmup. The store binds its record hooks and
	// loads the first snapshot once the server is up.
	pb.OnServe().BindFunc(func(e *core.ServeEvent) error {
		container.Store.Start()
		return e.Next()
	})

	// 4. Routes
	app.RegisterRoutes(pb, container)

	if err := pb.Start(); err != nil {
		log.Fatal(err)
	}
}
