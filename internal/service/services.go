package service

import (
	"github.com/harborline/moorage/internal/adapter"
	"github.com/harborline/moorage/internal/config"
	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/internal/store"
)

// Gateways bundles the outbound collaborators the services depend on.
type Gateways struct {
	Notifier    adapter.Notifier
	ObjectStore adapter.ObjectStore
	Photos      adapter.PhotoSearcher
	Fetcher     adapter.ImageFetcher
}

// Services bundles the business-logic layer of the server.
type Services struct {
	AccountService AccountService
	ContentService ContentService
}

func NewServices(storages store.Storages, gateways Gateways, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AccountService: NewAccountService(storages.AccountRepository, gateways.Notifier, cfg.App, logger),
		ContentService: NewContentService(
			storages.ArchiveRepository,
			storages.BoatRepository,
			gateways.ObjectStore,
			gateways.Photos,
			gateways.Fetcher,
			logger,
		),
	}
}
