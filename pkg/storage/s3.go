// Package storage talks to the S3-compatible object store holding
// product images, and resolves stored image references into public
// URLs. Works with AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config holds everything needed to reach the bucket.
type Config struct {
	Bucket   string
	Region   string
	Key      string
	Secret   string
	Endpoint string // leave empty for real AWS
	BaseURL  string // public URL prefix; derived from bucket+region when empty
}

// S3 is an explicit client for the image bucket.
type S3 struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3 builds a client from cfg. An empty bucket is a configuration
// error: nothing can be stored without one.
func NewS3(ctx context.Context, cfg Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket is not configured")
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Region),
	}

	// Static credentials (required for MinIO / R2 / Spaces)
	if cfg.Key != "" && cfg.Secret != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, ""),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	clientOpts := []func(*s3.Options){}
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // required for MinIO
		})
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3{
		client:  s3.NewFromConfig(awsCfg, clientOpts...),
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}, nil
}

// Put writes content to path in the bucket.
func (s *S3) Put(ctx context.Context, path, contentType string, content []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("storage: put %s: %w", path, err)
	}
	return nil
}

// PutStream writes from r to path in the bucket.
func (s *S3) PutStream(ctx context.Context, path, contentType string, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("storage: read: %w", err)
	}
	return s.Put(ctx, path, contentType, content)
}

// URL returns the public URL for path.
func (s *S3) URL(path string) string {
	return s.baseURL + "/" + strings.TrimLeft(path, "/")
}

// BaseURL returns the public URL prefix for the bucket.
func (s *S3) BaseURL() string {
	return s.baseURL
}
