package infra

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/gamereviewhub/game-review-service/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioClient struct {
	Client    *minio.Client
	Bucket    string
	PublicURL string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	return &MinioClient{
		Client:    client,
		Bucket:    cfg.Minio.Bucket,
		PublicURL: cfg.Minio.PublicURL,
	}
}

// EnsureBucket creates the configured bucket if it doesn't exist
func (m *MinioClient) EnsureBucket(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := m.Client.MakeBucket(ctx, m.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

func (m *MinioClient) PutObject(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := m.Client.PutObject(ctx, m.Bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}

// GetObject returns the object stream plus its metadata. The caller
// owns the returned reader and must Close it when the transfer ends.
func (m *MinioClient) GetObject(ctx context.Context, key string) (io.ReadCloser, minio.ObjectInfo, error) {
	obj, err := m.Client.GetObject(ctx, m.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, minio.ObjectInfo{}, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, minio.ObjectInfo{}, fmt.Errorf("failed to stat object %s: %w", key, err)
	}
	return obj, stat, nil
}

func (m *MinioClient) RemoveObject(ctx context.Context, key string) error {
	err := m.Client.RemoveObject(ctx, m.Bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object %s: %w", key, err)
	}
	return nil
}

// PresignedGetURL issues a time-limited retrieval URL. When a public
// URL is configured the storage endpoint (often an internal Docker
// hostname) is rewritten so the link works from outside the network.
func (m *MinioClient) PresignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	signed, err := m.Client.PresignedGetObject(ctx, m.Bucket, key, ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %w", key, err)
	}
	return RewriteToPublic(signed.String(), m.PublicURL), nil
}

// RewriteToPublic swaps the scheme and host of raw for those of
// publicURL, keeping path and query intact. Malformed inputs return
// raw unchanged.
func RewriteToPublic(raw, publicURL string) string {
	if publicURL == "" {
		return raw
	}
	src, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	pub, err := url.Parse(publicURL)
	if err != nil || pub.Host == "" {
		return raw
	}
	src.Host = pub.Host
	if pub.Scheme != "" {
		src.Scheme = pub.Scheme
	}
	return src.String()
}
