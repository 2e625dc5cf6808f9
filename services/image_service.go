package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/rtu-kota/canteen-api/utils"
)

// ErrImageUploadsDisabled is returned when no image backend is configured
var ErrImageUploadsDisabled = errors.New("image uploads are disabled")

// Image is a stored menu image
type Image struct {
	Key string `json:"key"`
	URL string `json:"image_url"`
}

// ImageStore persists image files
type ImageStore interface {
	// Save stores the uploaded file under filename and returns where it can be fetched
	Save(ctx context.Context, fileHeader *multipart.FileHeader, filename string) (Image, error)
}

// ImageService validates and stores menu images
type ImageService struct {
	store ImageStore
	now   func() time.Time
}

// NewImageService returns an ImageService writing to store. A nil store disables uploads.
func NewImageService(store ImageStore) *ImageService {
	return &ImageService{store: store, now: time.Now}
}

// Enabled reports whether uploads can be accepted
func (s *ImageService) Enabled() bool {
	return s != nil && s.store != nil
}

// UploadImage validates an image file and stores it under a unique name
func (s *ImageService) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (Image, error) {
	if !s.Enabled() {
		return Image{}, ErrImageUploadsDisabled
	}

	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return Image{}, err
	}

	image, err := s.store.Save(ctx, fileHeader, utils.UniqueFilename(fileHeader.Filename, s.now()))
	if err != nil {
		return Image{}, fmt.Errorf("failed to upload image: %w", err)
	}
	return image, nil
}
