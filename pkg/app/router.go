package app

import (
	internalApp "github.com/AdamAbdallah1/cedarstech-pricelist/internal/app"
	"github.com/AdamAbdallah1/cedarstech-pricelist/pkg/middleware"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// RegisterRoutes configures all application routes.
func RegisterRoutes(pb *pocketbase.PocketBase, c *internalApp.Container) {
	pb.OnServe().BindFunc(func(se *core.ServeEvent) error {

		// ---------------------------------------------------------
		// 1. STOREFRONT (public, read only)
		// ---------------------------------------------------------
		se.Router.GET("/api/catalog", c.PublicHandler.Catalog)
		se.Router.GET("/api/catalog/stream", c.StreamHandler.Catalog)
		se.Router.GET("/api/catalog/{id}", c.PublicHandler.ServiceDetail)

		// ---------------------------------------------------------
		// 2. SESSION
		// ---------------------------------------------------------
		se.Router.POST("/api/login", c.AdminHandler.ProcessLogin)
		se.Router.POST("/api/logout", c.AdminHandler.Logout)

		// ---------------------------------------------------------
		// 3. BACK OFFICE (cookie guarded)
		// ---------------------------------------------------------
		admin := se.Router.Group("/admin/api")
		admin.BindFunc(middleware.RequireAdmin(c.Gate))

		admin.GET("/catalog", c.AdminHandler.Catalog)
		admin.GET("/export", c.AdminHandler.Export)

		admin.POST("/services", c.AdminHandler.ServiceCreate)
		admin.PATCH("/services/{id}", c.AdminHandler.ServiceUpdate)
		admin.DELETE("/services/{id}", c.AdminHandler.ServiceDelete)

		admin.POST("/services/{id}/plans", c.AdminHandler.PlanAdd)
		admin.PATCH("/services/{id}/plans/{index}", c.AdminHandler.PlanUpdate)
		admin.DELETE("/services/{id}/plans/{index}", c.AdminHandler.PlanRemove)

		return se.Next()
	})
}
