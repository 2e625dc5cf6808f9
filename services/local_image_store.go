package services

import (
	"context"
	"mime/multipart"

	"github.com/rtu-kota/canteen-api/utils"
)

// LocalImageStore keeps images on the local filesystem; they are served by the uploads route
type LocalImageStore struct {
	dir string
}

// NewLocalImageStore returns a store writing into dir
func NewLocalImageStore(dir string) *LocalImageStore {
	return &LocalImageStore{dir: dir}
}

// Dir returns the directory images are written to
func (s *LocalImageStore) Dir() string {
	return s.dir
}

// Save writes the file into the upload directory
func (s *LocalImageStore) Save(_ context.Context, fileHeader *multipart.FileHeader, filename string) (Image, error) {
	if err := utils.SaveUploadedFile(fileHeader, s.dir, filename); err != nil {
		return Image{}, err
	}
	return Image{Key: filename, URL: utils.LocalImageURL(filename)}, nil
}
