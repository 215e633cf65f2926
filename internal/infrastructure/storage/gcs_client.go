package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	projectID  string
}

func NewCloudStorageClient(ctx context.Context, bucketName, projectID string, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		projectID:  projectID,
	}, nil
}

// UploadProfilePhoto stores a photo under profiles/<uid>/ and returns its
// public URL.
func (c *CloudStorageClient) UploadProfilePhoto(ctx context.Context, uid, fileName, contentType string, content io.Reader) (string, error) {
	ext := path.Ext(fileName)
	objectName := fmt.Sprintf("profiles/%s/%s%s", uid, uuid.New().String(), strings.ToLower(ext))

	writeCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	writer := c.client.Bucket(c.bucketName).Object(objectName).NewWriter(writeCtx)
	writer.ContentType = contentType

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to write object: %v", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

func (c *CloudStorageClient) DeleteObject(ctx context.Context, objectName string) error {
	return c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx)
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
