package media

import (
	"context"
	"fmt"

	"carelink-backend/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/sirupsen/logrus"
)

// Upload is the result of pushing bytes to the media host. PublicID is the
// opaque identifier used for later deletion.
type Upload struct {
	URL      string
	PublicID string
}

// Store abstracts the external media host. file accepts whatever the host
// SDK accepts: an io.Reader, a local path, or a remote URL.
type Store interface {
	Upload(ctx context.Context, file interface{}) (*Upload, error)
	// Destroy returns the host's result string ("ok", "not found", ...).
	Destroy(ctx context.Context, publicID string) (string, error)
}

type cloudinaryStore struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore(cfg config.CloudinaryConfig) (Store, error) {
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}

	logrus.Info("Cloudinary media store initialized")

	return &cloudinaryStore{
		client: client,
		folder: cfg.Folder,
	}, nil
}

func (s *cloudinaryStore) Upload(ctx context.Context, file interface{}) (*Upload, error) {
	resp, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: s.folder,
	})
	if err != nil {
		return nil, err
	}
	return &Upload{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}, nil
}

func (s *cloudinaryStore) Destroy(ctx context.Context, publicID string) (string, error) {
	resp, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return "", err
	}
	return resp.Result, nil
}
