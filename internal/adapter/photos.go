package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/harborline/moorage/internal/config"
	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/internal/utils"
)

// photoSearchAdapter is a [PhotoSearcher] and [ImageFetcher] backed by an
// Unsplash-compatible photo API.
type photoSearchAdapter struct {
	client    *utils.HTTPClient
	searchURL string
	accessKey string
	logger    *logger.Logger
}

// NewPhotoSearchAdapter constructs a gateway to the searchable-photo provider.
// The provider authenticates by a client_id query parameter, so the access key
// is attached to every search request. Returns an error if the base URL or
// access key is empty.
func NewPhotoSearchAdapter(cfg config.Photos, logger *logger.Logger) (PhotoGateway, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("photo gateway: empty base URL")
	}
	if strings.TrimSpace(cfg.AccessKey) == "" {
		return nil, fmt.Errorf("photo gateway: empty access key")
	}

	// Fetch downloads from absolute CDN URLs, so no base URL is set on the
	// client itself.
	client := utils.NewHTTPClient(cfg.RequestTimeout)

	return &photoSearchAdapter{
		client:    client,
		searchURL: strings.TrimRight(cfg.BaseURL, "/"),
		accessKey: cfg.AccessKey,
		logger:    logger,
	}, nil
}

// Search implements [PhotoSearcher]. The provider's JSON body is returned
// verbatim so the caller can forward it without re-encoding.
func (p *photoSearchAdapter) Search(ctx context.Context, query string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client_id": p.accessKey,
			"query":     query,
		}).
		Get(p.searchURL)
	if err != nil {
		log.Err(err).Str("func", "*photoSearchAdapter.Search").Msg("photo search request failed")
		return nil, fmt.Errorf("%w: %s", ErrPhotoSearchFailed, err)
	}
	if resp.StatusCode() != http.StatusOK {
		log.Error().
			Str("func", "*photoSearchAdapter.Search").
			Int("status", resp.StatusCode()).
			Msg("photo provider returned an error")
		return nil, fmt.Errorf("%w: http %d", ErrPhotoSearchFailed, resp.StatusCode())
	}

	return json.RawMessage(resp.Body()), nil
}

// Fetch implements [ImageFetcher]. It is used to pull a photo off the
// provider's CDN before re-hosting it in the object store.
func (p *photoSearchAdapter) Fetch(ctx context.Context, imageURL string) ([]byte, string, error) {
	log := logger.FromContext(ctx)

	resp, err := p.client.R().
		SetContext(ctx).
		Get(imageURL)
	if err != nil {
		log.Err(err).Str("func", "*photoSearchAdapter.Fetch").Msg("image fetch failed")
		return nil, "", fmt.Errorf("%w: %s", ErrImageFetchFailed, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, "", fmt.Errorf("%w: http %d", ErrImageFetchFailed, resp.StatusCode())
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return resp.Body(), contentType, nil
}
