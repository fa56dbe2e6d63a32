// Package adapter provides gateways to the external collaborators of the
// service: the outbound mail provider, the searchable-photo provider, and the
// S3-compatible object store.
//
// Every gateway hides its provider's wire format behind a small interface, so
// the service layer only deals with domain values. Transport failures are
// mapped to the sentinel errors defined in errors.go; callers use [errors.Is]
// and never inspect provider status codes themselves.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/harborline/moorage/models"
)

// Notifier delivers transactional mail to account holders.
type Notifier interface {
	// SendActivationCode mails the six-digit activation code to the given
	// address. Returns [ErrNotificationFailed] (wrapped) if the provider
	// rejects the message or cannot be reached.
	SendActivationCode(ctx context.Context, email, code string) error

	// SendResetCode mails the six-digit password-reset code to the given
	// address. Returns [ErrNotificationFailed] (wrapped) on delivery failure.
	SendResetCode(ctx context.Context, email, code string) error
}

// PhotoSearcher queries the third-party photo provider for images matching a
// free-text term.
type PhotoSearcher interface {
	// Search runs a photo search and returns the provider's response body
	// verbatim, so the caller can pass it through without re-encoding.
	Search(ctx context.Context, query string) (json.RawMessage, error)
}

// ImageFetcher downloads a remote image so it can be re-hosted.
type ImageFetcher interface {
	// Fetch retrieves the resource at imageURL and returns its bytes together
	// with the Content-Type reported by the remote server.
	Fetch(ctx context.Context, imageURL string) (data []byte, contentType string, err error)
}

// PhotoGateway bundles both sides of the photo provider: searching its
// catalogue and downloading individual images.
type PhotoGateway interface {
	PhotoSearcher
	ImageFetcher
}

// ObjectStore persists binary objects in an S3-compatible bucket.
type ObjectStore interface {
	// Store uploads the object's body under its key and returns the publicly
	// reachable URL of the stored object.
	Store(ctx context.Context, object models.StoredObject) (string, error)
}
