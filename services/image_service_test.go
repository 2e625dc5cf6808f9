package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rtu-kota/canteen-api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	require.Len(t, form.File["image"], 1)
	return form.File["image"][0]
}

func fixedClock() time.Time {
	return time.Unix(1700000000, 0)
}

func TestImageServiceDisabled(t *testing.T) {
	svc := NewImageService(nil)
	assert.False(t, svc.Enabled())

	_, err := svc.UploadImage(context.Background(), newFileHeader(t, "tea.png", []byte("png")))
	assert.ErrorIs(t, err, ErrImageUploadsDisabled)

	var nilService *ImageService
	assert.False(t, nilService.Enabled())
}

func TestImageServiceUploadToS3(t *testing.T) {
	client := NewMockS3Client()
	svc := NewImageService(NewS3ImageStore(client, "canteen-images", "ap-south-1"))
	svc.now = fixedClock

	image, err := svc.UploadImage(context.Background(), newFileHeader(t, "masala tea.jpg", []byte("jpeg bytes")))
	require.NoError(t, err)

	assert.Equal(t, "menu/1700000000000000000_masala_tea.jpg", image.Key)
	assert.Equal(t, "https://canteen-images.s3.ap-south-1.amazonaws.com/menu/1700000000000000000_masala_tea.jpg", image.URL)

	body, contentType, ok := client.Object(image.Key)
	require.True(t, ok)
	assert.Equal(t, []byte("jpeg bytes"), body)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestImageServiceRejectsInvalidFile(t *testing.T) {
	client := NewMockS3Client()
	svc := NewImageService(NewS3ImageStore(client, "bucket", "us-east-1"))

	_, err := svc.UploadImage(context.Background(), newFileHeader(t, "menu.pdf", []byte("%PDF")))
	require.Error(t, err)

	var fileErr *utils.FileUploadError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, "INVALID_FILE_FORMAT", fileErr.Code)
	assert.Equal(t, 0, client.Len(), "nothing should reach S3")
}

func TestImageServiceS3Failure(t *testing.T) {
	client := NewMockS3Client()
	client.FailWith(errors.New("access denied"))
	svc := NewImageService(NewS3ImageStore(client, "bucket", "us-east-1"))

	_, err := svc.UploadImage(context.Background(), newFileHeader(t, "tea.png", []byte("png")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload image")
	assert.Contains(t, err.Error(), "access denied")
}

func TestImageServiceUploadToLocalDisk(t *testing.T) {
	dir := t.TempDir()
	local := NewLocalImageStore(dir)
	assert.Equal(t, dir, local.Dir())

	svc := NewImageService(local)
	svc.now = fixedClock

	image, err := svc.UploadImage(context.Background(), newFileHeader(t, "samosa.png", []byte("png bytes")))
	require.NoError(t, err)

	assert.Equal(t, "1700000000000000000_samosa.png", image.Key)
	assert.Equal(t, "/api/uploads/1700000000000000000_samosa.png", image.URL)

	saved, err := os.ReadFile(filepath.Join(dir, image.Key))
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), saved)
}
