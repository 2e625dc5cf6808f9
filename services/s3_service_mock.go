package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MockS3Client is an in-memory S3API for testing
type MockS3Client struct {
	objects      map[string][]byte // map of S3 key to object content
	contentTypes map[string]string
	err          error
	mu           sync.RWMutex
}

// NewMockS3Client creates an empty mock S3 client
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
	}
}

// FailWith makes every subsequent PutObject return err
func (m *MockS3Client) FailWith(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// PutObject stores the object body in memory
func (m *MockS3Client) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	key := aws.ToString(params.Key)
	m.objects[key] = body
	m.contentTypes[key] = aws.ToString(params.ContentType)
	return &s3.PutObjectOutput{}, nil
}

// Object returns the stored body and content type for key
func (m *MockS3Client) Object(key string) ([]byte, string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	body, ok := m.objects[key]
	return body, m.contentTypes[key], ok
}

// Len returns the number of stored objects
func (m *MockS3Client) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
