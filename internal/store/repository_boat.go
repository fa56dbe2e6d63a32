package store

import (
	"context"
	"fmt"

	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/models"
)

// boatRepository is the PostgreSQL-backed implementation of [BoatRepository].
type boatRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBoatRepository constructs a [BoatRepository] backed by the provided
// database connection and logger.
func NewBoatRepository(db *DB, logger *logger.Logger) BoatRepository {
	logger.Debug().Msg("creating boat repository")
	return &boatRepository{
		db:     db,
		logger: logger,
	}
}

func scanBoat(scan func(dest ...any) error) (models.Boat, error) {
	var b models.Boat
	err := scan(
		&b.BoatID, &b.AccountID, &b.Pic, &b.Make, &b.Model, &b.Length, &b.UnitLength, &b.Year,
		&b.BoatType, &b.BoatMaterial, &b.Price, &b.UnitPrice, &b.VesselName, &b.HomePort,
		&b.Location, &b.Published, &b.CreatedAt,
	)
	return b, err
}

// CreateBoat persists a new boat listing and returns it with the
// server-assigned creation timestamp.
func (r *boatRepository) CreateBoat(ctx context.Context, boat models.Boat) (models.Boat, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBoat,
		boat.BoatID, boat.AccountID, boat.Pic, boat.Make, boat.Model, boat.Length, boat.UnitLength,
		boat.Year, boat.BoatType, boat.BoatMaterial, boat.Price, boat.UnitPrice, boat.VesselName,
		boat.HomePort, boat.Location, boat.Published)

	created, err := scanBoat(row.Scan)
	if err != nil {
		log.Err(err).Str("func", "*boatRepository.CreateBoat").Msg("error creating boat")
		return models.Boat{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindBoatsByAccount lists all boat listings owned by the account, newest
// first.
func (r *boatRepository) FindBoatsByAccount(ctx context.Context, accountID string) ([]models.Boat, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findBoatsByAccount, accountID)
	if err != nil {
		log.Err(err).Str("func", "*boatRepository.FindBoatsByAccount").Msg("error querying boats")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	boats := make([]models.Boat, 0)
	for rows.Next() {
		boat, err := scanBoat(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*boatRepository.FindBoatsByAccount").Msg("error scanning boat rows")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		boats = append(boats, boat)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return boats, nil
}
