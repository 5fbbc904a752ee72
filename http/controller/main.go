package controller

import (
	"context"
	"io"
	"time"

	"github.com/gamereviewhub/game-review-service/config"
	"github.com/gamereviewhub/game-review-service/infra"
	"github.com/gamereviewhub/game-review-service/repository"
	"github.com/minio/minio-go/v7"
)

// BlobStore is the object-storage surface the cover handlers depend on.
type BlobStore interface {
	PutObject(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	GetObject(ctx context.Context, key string) (io.ReadCloser, minio.ObjectInfo, error)
	RemoveObject(ctx context.Context, key string) error
	PresignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
	Blobs      BlobStore
}

func NewController(cfg *config.Config, infra *infra.Infra, repo *repository.Repository) *Controller {
	ctrl := &Controller{
		Config:     cfg,
		Infra:      infra,
		Repository: repo,
	}
	if infra.Minio != nil {
		ctrl.Blobs = infra.Minio
	}
	return ctrl
}
