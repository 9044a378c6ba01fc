package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"campus-lostfound/internal/config"
)

// UploadedImage points at an item photo stored in the object bucket.
type UploadedImage struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

type MediaService interface {
	Upload(ctx context.Context, fileName string, fileSize int64, mimeType string, reader io.Reader) (*UploadedImage, error)
	Delete(ctx context.Context, storagePath string) error
	PublicURL(storagePath string) string
}

type mediaService struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewMediaService(minioClient *minio.Client, cfg *config.Config) MediaService {
	return &mediaService{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *mediaService) Upload(ctx context.Context, fileName string, fileSize int64, mimeType string, reader io.Reader) (*UploadedImage, error) {
	storagePath := fmt.Sprintf("items/%s/%s", time.Now().Format("2006/01"), uuid.New().String())

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return &UploadedImage{
		Path: storagePath,
		URL:  s.PublicURL(storagePath),
	}, nil
}

func (s *mediaService) Delete(ctx context.Context, storagePath string) error {
	return s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
}

func (s *mediaService) PublicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}
