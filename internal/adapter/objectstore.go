package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/harborline/moorage/internal/config"
	"github.com/harborline/moorage/internal/logger"
	"github.com/harborline/moorage/models"
)

// s3ObjectStore is an [ObjectStore] backed by an S3-compatible bucket.
type s3ObjectStore struct {
	uploader *manager.Uploader
	bucket   string
	// publicBase is the URL prefix of stored objects,
	// e.g. "https://bucket.s3.us-east-1.amazonaws.com".
	publicBase string
	logger     *logger.Logger
}

// NewS3ObjectStore constructs an [ObjectStore] over the AWS SDK. Static
// credentials from the configuration are used; a non-empty BaseEndpoint
// redirects the client to an S3-compatible store such as MinIO. Returns an
// error if the region or bucket is empty or the SDK configuration cannot be
// assembled.
func NewS3ObjectStore(ctx context.Context, cfg config.ObjectStore, logger *logger.Logger) (ObjectStore, error) {
	if strings.TrimSpace(cfg.Region) == "" {
		return nil, fmt.Errorf("object store: empty region")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("object store: empty bucket")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("object store: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &s3ObjectStore{
		uploader:   manager.NewUploader(client),
		bucket:     cfg.Bucket,
		publicBase: publicBaseURL(cfg),
		logger:     logger,
	}, nil
}

// publicBaseURL derives the stable URL prefix under which stored objects are
// reachable, for AWS proper and for path-style compatible stores alike.
func publicBaseURL(cfg config.ObjectStore) string {
	if cfg.BaseEndpoint != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(cfg.BaseEndpoint, "/"), cfg.Bucket)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

// Store implements [ObjectStore]. The returned URL assumes the bucket policy
// permits public reads of uploaded objects.
func (s *s3ObjectStore) Store(ctx context.Context, object models.StoredObject) (string, error) {
	log := logger.FromContext(ctx)

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(object.Key),
		Body:        object.Body,
		ContentType: aws.String(object.ContentType),
	})
	if err != nil {
		log.Err(err).
			Str("func", "*s3ObjectStore.Store").
			Str("key", object.Key).
			Msg("upload failed")
		return "", fmt.Errorf("%w: %s", ErrObjectStoreFailed, err)
	}

	return fmt.Sprintf("%s/%s", s.publicBase, object.Key), nil
}
