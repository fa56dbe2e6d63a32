package adapter

import "errors"

var (
	ErrNotificationFailed = errors.New("notification delivery failed")
	ErrPhotoSearchFailed  = errors.New("photo search failed")
	ErrImageFetchFailed   = errors.New("image fetch failed")
	ErrObjectStoreFailed  = errors.New("object store operation failed")
)
