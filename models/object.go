package models

import "io"

// StoredObject describes a binary blob destined for the object store.
type StoredObject struct {
	// Key is the full object key inside the bucket,
	// e.g. "fotos/1693526400000_boat.jpg".
	Key string

	// ContentType is the MIME type sent with the object.
	ContentType string

	// Body is the object payload. It is consumed exactly once during upload.
	Body io.Reader
}
