package models

import "time"

// Archive is the record of one uploaded unit of content. The URL is the
// durable location returned by the object store and is stored verbatim.
// Every archive is owned by exactly one account; ownership is enforced at
// the application layer, not by a database constraint.
type Archive struct {
	// ArchiveID is the unique identifier of the record (UUID).
	ArchiveID string `json:"archiveId"`

	// AccountID references the owning account.
	AccountID string `json:"userId"`

	// URL is the opaque durable location returned by the object store.
	URL string `json:"url"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Archive model.
func (a Archive) TableName() string {
	return "archives"
}
