package store

import (
	"github.com/harborline/moorage/internal/logger"
)

// Storages bundles every repository backed by the shared database
// connection, so the service layer receives one dependency instead of
// three.
type Storages struct {
	AccountRepository AccountRepository
	ArchiveRepository ArchiveRepository
	BoatRepository    BoatRepository
}

// NewStorages constructs all repositories over the given connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		ArchiveRepository: NewArchiveRepository(db, logger),
		BoatRepository:    NewBoatRepository(db, logger),
	}
}
