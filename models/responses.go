package models

import "encoding/json"

// SuccessResponse is the uniform success envelope returned by every
// endpoint. Optional fields are omitted when empty so the same type can
// carry a bare message, a login result, or an uploaded-file URL.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	// AccessToken and User are populated by login.
	AccessToken string   `json:"accessToken,omitempty"`
	User        *Account `json:"user,omitempty"`

	// URL is populated by upload and getUrl.
	URL string `json:"url,omitempty"`

	// Data is populated by archives and search.
	Data json.RawMessage `json:"data,omitempty"`
}

// ErrorResponse is the uniform error envelope: {error:true, message}.
// Status duplicates the HTTP status code for callers that only inspect
// the body.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}
