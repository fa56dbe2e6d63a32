package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/models"
)

// archiveRepository is the PostgreSQL-backed implementation of
// [ArchiveRepository].
type archiveRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewArchiveRepository constructs an [ArchiveRepository] backed by the
// provided database connection and logger.
func NewArchiveRepository(db *DB, logger *logger.Logger) ArchiveRepository {
	logger.Debug().Msg("creating archive repository")
	return &archiveRepository{
		db:     db,
		logger: logger,
	}
}

// CreateArchive persists a new archive record and returns it with the
// server-assigned creation timestamp.
func (r *archiveRepository) CreateArchive(ctx context.Context, archive models.Archive) (models.Archive, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createArchive, archive.ArchiveID, archive.AccountID, archive.URL)

	var created models.Archive
	if err := row.Scan(&created.ArchiveID, &created.AccountID, &created.URL, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*archiveRepository.CreateArchive").Msg("error creating archive")
		return models.Archive{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindArchiveByID retrieves one archive record by its identifier.
// Returns [ErrNoArchiveWasFound] if no row matches.
func (r *archiveRepository) FindArchiveByID(ctx context.Context, archiveID string) (models.Archive, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findArchiveByID, archiveID)

	var archive models.Archive
	if err := row.Scan(&archive.ArchiveID, &archive.AccountID, &archive.URL, &archive.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Archive{}, ErrNoArchiveWasFound
		}

		log.Err(err).Str("func", "*archiveRepository.FindArchiveByID").Msg("error scanning archive row")
		return models.Archive{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return archive, nil
}

// FindArchivesByAccount lists all archive records owned by the account,
// newest first.
func (r *archiveRepository) FindArchivesByAccount(ctx context.Context, accountID string) ([]models.Archive, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findArchivesByAccount, accountID)
	if err != nil {
		log.Err(err).Str("func", "*archiveRepository.FindArchivesByAccount").Msg("error querying archives")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	archives := make([]models.Archive, 0)
	for rows.Next() {
		var archive models.Archive
		if err = rows.Scan(&archive.ArchiveID, &archive.AccountID, &archive.URL, &archive.CreatedAt); err != nil {
			log.Err(err).Str("func", "*archiveRepository.FindArchivesByAccount").Msg("error scanning archive rows")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		archives = append(archives, archive)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return archives, nil
}
