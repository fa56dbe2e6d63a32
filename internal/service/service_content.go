package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/harborline/moorage/internal/adapter"
	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/internal/store"
	"github.com/harborline/moorage/internal/utils"
	"github.com/harborline/moorage/internal/validators"
	"github.com/harborline/moorage/models"
)

// storagePrefix is the key prefix under which uploaded and transferred
// images live in the bucket.
const storagePrefix = "fotos"

// contentService is the concrete implementation of ContentService.
type contentService struct {
	archiveRepository store.ArchiveRepository
	boatRepository    store.BoatRepository

	objectStore adapter.ObjectStore
	photos      adapter.PhotoSearcher
	fetcher     adapter.ImageFetcher

	validator validators.Validator
	uuid      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewContentService constructs a ContentService over the given repositories
// and outbound gateways.
func NewContentService(
	archiveRepository store.ArchiveRepository,
	boatRepository store.BoatRepository,
	objectStore adapter.ObjectStore,
	photos adapter.PhotoSearcher,
	fetcher adapter.ImageFetcher,
	logger *logger.Logger,
) ContentService {
	return &contentService{
		archiveRepository: archiveRepository,
		boatRepository:    boatRepository,
		objectStore:       objectStore,
		photos:            photos,
		fetcher:           fetcher,
		validator:         validators.NewAccountValidator(),
		uuid:              utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// storageKey derives the object key for a stored file. The millisecond prefix
// keeps same-named uploads from overwriting each other.
func storageKey(filename string) string {
	return fmt.Sprintf("%s/%d_%s", storagePrefix, time.Now().UnixMilli(), path.Base(filename))
}

// Upload implements [ContentService].
func (c *contentService) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	if filename == "" {
		return "", fmt.Errorf("%w: empty filename", ErrInvalidDataProvided)
	}

	storedURL, err := c.objectStore.Store(ctx, models.StoredObject{
		Key:         storageKey(filename),
		ContentType: contentType,
		Body:        body,
	})
	if err != nil {
		log.Err(err).Str("filename", filename).Msg("file upload ended with error")
		return "", err
	}

	return storedURL, nil
}

// Transfer implements [ContentService]. The image is fetched from the remote
// URL and re-uploaded, so the stored copy survives the source going away.
func (c *contentService) Transfer(ctx context.Context, accountID, imageURL string) (models.Archive, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, models.TransferRequest{ImageURL: imageURL}); err != nil {
		return models.Archive{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	data, contentType, err := c.fetcher.Fetch(ctx, imageURL)
	if err != nil {
		log.Err(err).Str("imageURL", imageURL).Msg("image fetch ended with error")
		return models.Archive{}, err
	}

	storedURL, err := c.Upload(ctx, transferFilename(imageURL), contentType, bytes.NewReader(data))
	if err != nil {
		return models.Archive{}, err
	}

	archive, err := c.archiveRepository.CreateArchive(ctx, models.Archive{
		ArchiveID: c.uuid.Generate(),
		AccountID: accountID,
		URL:       storedURL,
	})
	if err != nil {
		return models.Archive{}, fmt.Errorf("archive creation ended with error: %w", err)
	}

	return archive, nil
}

// transferFilename derives a stable basename from the source URL, falling
// back to a fixed name when the URL path carries none.
func transferFilename(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil {
		return "image"
	}

	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "image"
	}
	return name
}

// Archives implements [ContentService].
func (c *contentService) Archives(ctx context.Context, accountID string) ([]models.Archive, error) {
	archives, err := c.archiveRepository.FindArchivesByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("archive listing ended with error: %w", err)
	}

	return archives, nil
}

// ArchiveURL implements [ContentService]. An archive owned by another account
// is reported as not found.
func (c *contentService) ArchiveURL(ctx context.Context, accountID, archiveID string) (string, error) {
	archive, err := c.archiveRepository.FindArchiveByID(ctx, archiveID)
	if err != nil {
		return "", err
	}

	if archive.AccountID != accountID {
		return "", store.ErrNoArchiveWasFound
	}

	return archive.URL, nil
}

// Search implements [ContentService].
func (c *contentService) Search(ctx context.Context, req models.SearchRequest) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	results, err := c.photos.Search(ctx, req.Query)
	if err != nil {
		log.Err(err).Str("query", req.Query).Msg("photo search ended with error")
		return nil, err
	}

	return results, nil
}

// SaveBoat implements [ContentService]. The listing is stored under the
// authenticated account regardless of any owner field in the request body.
func (c *contentService) SaveBoat(ctx context.Context, accountID string, req models.SaveBoatRequest) (models.Boat, error) {
	log := logger.FromContext(ctx)

	boat, err := c.boatRepository.CreateBoat(ctx, models.Boat{
		BoatID:       c.uuid.Generate(),
		AccountID:    accountID,
		Pic:          req.Pic,
		Make:         req.Make,
		Model:        req.Model,
		Length:       req.Length,
		UnitLength:   req.UnitLength,
		Year:         req.Year,
		BoatType:     req.BoatType,
		BoatMaterial: req.BoatMaterial,
		Price:        req.Price,
		UnitPrice:    req.UnitPrice,
		VesselName:   req.VesselName,
		HomePort:     req.HomePort,
		Location:     req.Location,
		Published:    req.Published,
	})
	if err != nil {
		log.Err(err).Str("accountID", accountID).Msg("boat creation ended with error")
		return models.Boat{}, fmt.Errorf("boat creation ended with error: %w", err)
	}

	return boat, nil
}

// Boats implements [ContentService].
func (c *contentService) Boats(ctx context.Context, accountID string) ([]models.Boat, error) {
	boats, err := c.boatRepository.FindBoatsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("boat listing ended with error: %w", err)
	}

	return boats, nil
}
