package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	appcfg "github.com/folio-space/core/internal/config"
)

// s3Store uploads media to an S3-compatible bucket.
type s3Store struct {
	client       *s3.Client
	bucket       string
	region       string
	endpoint     string
	customDomain string
	pathStyle    bool
}

func newS3Store(cfg appcfg.S3Config) (*s3Store, error) {
	if cfg.Bucket == "" || cfg.Region == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, fmt.Errorf("incomplete s3 config: bucket/region/access_key_id/secret_access_key are required")
	}

	endpoint := cfg.Endpoint
	pathStyle := cfg.PathStyleAccess
	if endpoint != "" {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		endpoint = strings.TrimSuffix(endpoint, "/")
		if u, err := url.Parse(endpoint); err != nil || u.Host == "" {
			return nil, fmt.Errorf("invalid s3 endpoint: %s", cfg.Endpoint)
		}
		// Custom endpoints rarely resolve virtual-hosted bucket names.
		pathStyle = true
	}

	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		UsePathStyle: pathStyle,
	}
	if endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
	}

	return &s3Store{
		client:       s3.New(opts),
		bucket:       cfg.Bucket,
		region:       cfg.Region,
		endpoint:     endpoint,
		customDomain: cfg.CustomDomain,
		pathStyle:    pathStyle,
	}, nil
}

func (s *s3Store) Upload(ctx context.Context, payload []byte, contentType, suggestedName string) (string, string, error) {
	key := ObjectKey(suggestedName, time.Now())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(DetectContentType(contentType, payload)),
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	return s.objectURL(key), key, nil
}

func (s *s3Store) Delete(ctx context.Context, referenceID string) error {
	key := strings.TrimSpace(referenceID)
	if key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		var notFound *types.NotFound
		if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrStorageDelete, err)
	}
	return nil
}

func (s *s3Store) objectURL(key string) string {
	if s.customDomain != "" {
		return s.customDomain + "/" + key
	}
	if s.endpoint != "" {
		if s.pathStyle {
			return s.endpoint + "/" + s.bucket + "/" + key
		}
		return s.endpoint + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
