package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func NewClient(endpoint, key, secret string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: useSSL,
	})
}

// Storage uploads place images and returns the URL clients load them from.
type Storage struct {
	client    *minio.Client
	publicURL string
}

// NewStorage builds a Storage. publicURL is the externally reachable base
// (for example http://localhost:9000); when empty the client endpoint is used.
func NewStorage(client *minio.Client, publicURL string) *Storage {
	if publicURL == "" && client != nil {
		publicURL = client.EndpointURL().String()
	}
	return &Storage{client: client, publicURL: publicURL}
}

func (s *Storage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", bucket, objectName, err)
	}
	return objectURL(s.publicURL, bucket, objectName)
}

// EnsureBucket creates the bucket when it is missing.
func (s *Storage) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	return nil
}

func objectURL(base, bucket, objectName string) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return "", fmt.Errorf("public url %q: %w", base, err)
	}
	return u.JoinPath(bucket, objectName).String(), nil
}
