// Package objectstore hands out presigned upload URLs for an S3-compatible
// bucket so that clients upload avatars and submission files directly,
// bypassing the API.
package objectstore

//go:generate mockgen -source=objectstore.go -destination=../mock/objectstore_mock.go -package=mock

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-lms/internal/config"
	"github.com/MKhiriev/go-lms/internal/logger"
	"github.com/MKhiriev/go-lms/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	ErrNotConfigured  = errors.New("object storage is not configured")
	ErrPresignFailed  = errors.New("error presigning upload")
	ErrForeignObject  = errors.New("object key does not belong to the caller")
	ErrInvalidKeyPath = errors.New("invalid object key")
)

// Store issues upload targets and resolves public URLs of stored objects.
type Store interface {
	PresignUpload(ctx context.Context, key, contentType string) (models.UploadTarget, error)
	PublicURL(key string) string
}

// putPresigner matches [s3.PresignClient.PresignPutObject].
type putPresigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Store presigns PUT requests against one bucket.
type S3Store struct {
	presigner     putPresigner
	bucket        string
	publicBaseURL string
	ttl           time.Duration
}

// NewS3Store builds an [S3Store] from cfg. Static credentials are used when
// both keys are set; otherwise the default AWS credential chain applies.
// A custom Endpoint (MinIO, R2, ...) switches to path-style addressing.
func NewS3Store(ctx context.Context, cfg config.Objects, log *logger.Logger) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, ErrNotConfigured
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3Store").Msg("error loading AWS config")
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = defaultPublicBaseURL(cfg)
	}

	log.Info().Str("bucket", cfg.Bucket).Str("public_base_url", publicBaseURL).Msg("object store configured")

	return newS3Store(s3.NewPresignClient(client), cfg.Bucket, publicBaseURL, cfg.PresignTTL), nil
}

func newS3Store(presigner putPresigner, bucket, publicBaseURL string, ttl time.Duration) *S3Store {
	return &S3Store{
		presigner:     presigner,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		ttl:           ttl,
	}
}

func defaultPublicBaseURL(cfg config.Objects) string {
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

func (s *S3Store) PresignUpload(ctx context.Context, key, contentType string) (models.UploadTarget, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*S3Store.PresignUpload").Msg("error presigning upload")
		return models.UploadTarget{}, fmt.Errorf("%w: %w", ErrPresignFailed, err)
	}

	method := req.Method
	if method == "" {
		method = http.MethodPut
	}

	return models.UploadTarget{
		Key:       key,
		UploadURL: req.URL,
		PublicURL: s.PublicURL(key),
		Method:    method,
	}, nil
}

func (s *S3Store) PublicURL(key string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(key, "/")
}

// Disabled is a [Store] used when no bucket is configured.
type Disabled struct{}

func (Disabled) PresignUpload(context.Context, string, string) (models.UploadTarget, error) {
	return models.UploadTarget{}, ErrNotConfigured
}

func (Disabled) PublicURL(string) string { return "" }
