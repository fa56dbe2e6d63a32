package adapter

import (
	"context"
	"testing"

	"github.com/harborline/moorage/internal/config"
	"github.com/harborline/moorage/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicBaseURL_AWS(t *testing.T) {
	got := publicBaseURL(config.ObjectStore{
		Region: "us-east-1",
		Bucket: "moorage-media",
	})
	assert.Equal(t, "https://moorage-media.s3.us-east-1.amazonaws.com", got)
}

func TestPublicBaseURL_CompatibleEndpoint(t *testing.T) {
	got := publicBaseURL(config.ObjectStore{
		Region:       "us-east-1",
		Bucket:       "moorage-media",
		BaseEndpoint: "http://localhost:9000/",
	})
	assert.Equal(t, "http://localhost:9000/moorage-media", got)
}

func TestNewS3ObjectStore_MissingConfig(t *testing.T) {
	_, err := NewS3ObjectStore(context.Background(), config.ObjectStore{Bucket: "b"}, logger.Nop())
	require.Error(t, err)

	_, err = NewS3ObjectStore(context.Background(), config.ObjectStore{Region: "us-east-1"}, logger.Nop())
	require.Error(t, err)
}
