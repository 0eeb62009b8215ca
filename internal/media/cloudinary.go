package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Store is the asset host used by the packages service.
type Store interface {
	Upload(ctx context.Context, dataURI string) (*Asset, error)
	Destroy(ctx context.Context, publicID string) error
}

// CloudinaryStore keeps assets on Cloudinary.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

// Upload lets Cloudinary detect the resource type.
func (s *CloudinaryStore) Upload(ctx context.Context, dataURI string) (*Asset, error) {
	res, err := s.cld.Upload.Upload(ctx, dataURI, uploader.UploadParams{ResourceType: "auto"})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	return &Asset{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (s *CloudinaryStore) Destroy(ctx context.Context, publicID string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if res.Error.Message != "" {
		return errors.New("cloudinary destroy: " + res.Error.Message)
	}
	return nil
}

// Replace destroys previousID (when set) and uploads dataURI.
func Replace(ctx context.Context, store Store, dataURI, previousID string) (*Asset, error) {
	if previousID != "" {
		if err := store.Destroy(ctx, previousID); err != nil {
			return nil, err
		}
	}
	return store.Upload(ctx, dataURI)
}
