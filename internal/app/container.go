// Package app provides the dependency injection container for the
// price list system. This consolidates all service initialization in
// one place.
package app

import (
	"github.com/AdamAbdallah1/cedarstech-pricelist/internal/adapter/repository"
	"github.com/AdamAbdallah1/cedarstech-pricelist/internal/catalog"
	domain "github.com/AdamAbdallah1/cedarstech-pricelist/internal/core"
	"github.com/AdamAbdallah1/cedarstech-pricelist/internal/handler"
	"github.com/AdamAbdallah1/cedarstech-pricelist/internal/service"
	"github.com/AdamAbdallah1/cedarstech-pricelist/pkg/broker"

	"github.com/pocketbase/pocketbase"
)

// Container holds all application dependencies.
// This is the central place for Dependency Injection.
type Container struct {
	PB *pocketbase.PocketBase

	// Infrastructure
	Broker *broker.Broker
	Store  *catalog.Store

	// Repositories (Data Access Layer)
	CatalogRepo domain.CatalogRepository
	AdminRepo   domain.AdminRepository

	// Domain Services
	Gate *service.SessionGate

	// Handlers
	PublicHandler *handler.PublicHandler
	StreamHandler *handler.StreamHandler
	AdminHandler  *handler.AdminHandler
}

// NewContainer creates and wires all dependencies.
func NewContainer(pb *pocketbase.PocketBase) *Container {
	c := &Container{PB: pb}

	c.Broker = broker.New()

	c.CatalogRepo = repository.NewCatalogRepo(pb)
	c.AdminRepo = repository.NewAdminRepo(pb)

	c.Store = catalog.NewStore(pb, c.CatalogRepo, c.Broker)
	c.Gate = service.NewSessionGate(c.AdminRepo)

	c.PublicHandler = &handler.PublicHandler{Store: c.Store, Admin: c.AdminRepo}
	c.StreamHandler = &handler.StreamHandler{Store: c.Store}
	c.AdminHandler = &handler.AdminHandler{Store: c.Store, Repo: c.CatalogRepo, Gate: c.Gate}

	return c
}
