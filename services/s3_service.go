package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appConfig "github.com/rtu-kota/canteen-api/config"
	"github.com/rtu-kota/canteen-api/utils"
)

// s3KeyPrefix groups menu images in the bucket
const s3KeyPrefix = "menu/"

// S3API is the subset of the S3 client used for images
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ImageStore stores images in an S3 bucket
type S3ImageStore struct {
	client S3API
	bucket string
	region string
}

// NewS3ImageStore returns a store writing to bucket through client
func NewS3ImageStore(client S3API, bucket, region string) *S3ImageStore {
	return &S3ImageStore{client: client, bucket: bucket, region: region}
}

// NewS3ImageStoreFromConfig builds an S3 client from the application configuration
func NewS3ImageStoreFromConfig(ctx context.Context, cfg *appConfig.Config) (*S3ImageStore, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.AWSRegion)}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3ImageStore(s3.NewFromConfig(awsConfig), cfg.AWSS3Bucket, cfg.AWSRegion), nil
}

// Save uploads the file to S3 and returns its object URL
func (s *S3ImageStore) Save(ctx context.Context, fileHeader *multipart.FileHeader, filename string) (Image, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return Image{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("warning: failed to close file: %v", closeErr)
		}
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		return Image{}, fmt.Errorf("failed to read file: %w", err)
	}

	contentType, ok := utils.ImageContentType(filename)
	if !ok {
		contentType = "application/octet-stream"
	}

	key := s3KeyPrefix + filename
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return Image{}, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return Image{Key: key, URL: s.objectURL(key)}, nil
}

func (s *S3ImageStore) objectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
