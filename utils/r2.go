package utils

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Config holds the object-storage endpoint details. It is injected rather
// than read from the environment here so tests can run against a fake.
type R2Config struct {
	Bucket          string
	AccountID       string
	PublicBaseURL   string // e.g. https://<bucket>.<account_id>.r2.cloudflarestorage.com
	AccessKeyID     string
	SecretAccessKey string
}

// R2Uploader hosts product images and generated slip PDFs on Cloudflare R2.
type R2Uploader struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func NewR2Uploader(ctx context.Context, rc R2Config) (*R2Uploader, error) {
	if rc.Bucket == "" || rc.AccountID == "" || rc.PublicBaseURL == "" {
		return nil, fmt.Errorf("missing required R2 configuration")
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", rc.AccountID)

	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:           endpoint,
			SigningRegion: "auto",
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("auto"), // Important for R2
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			rc.AccessKeyID,
			rc.SecretAccessKey,
			"",
		)),
		config.WithEndpointResolverWithOptions(customResolver),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %v", err)
	}

	return &R2Uploader{
		client:     s3.NewFromConfig(cfg),
		bucket:     rc.Bucket,
		publicBase: strings.TrimRight(rc.PublicBaseURL, "/"),
	}, nil
}

// Upload stores a file on R2 and returns its public URL.
func (u *R2Uploader) Upload(ctx context.Context, fileBytes []byte, filename, contentType string) (string, error) {
	key := filepath.Base(filename)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(fileBytes),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %v", err)
	}

	return fmt.Sprintf("%s/%s", u.publicBase, url.PathEscape(key)), nil
}

// Delete removes a hosted file by its public URL.
func (u *R2Uploader) Delete(ctx context.Context, fileURL string) error {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return fmt.Errorf("invalid file URL: %v", err)
	}
	key := filepath.Base(parsed.Path)

	_, err = u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete R2 object: %v", err)
	}
	return nil
}
