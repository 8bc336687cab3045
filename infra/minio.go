package infra

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/tnqbao/gau-recipe-service/config"
)

// MinioClient stores recipe images; recipes only carry the returned
// reference URL.
type MinioClient struct {
	Client      *minio.Client
	Endpoint    string
	ImageBucket string
	PublicURL   string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}

	rootUser := cfg.Minio.RootUser
	if rootUser == "" {
		panic("MinIO root user is not configured")
	}

	rootPassword := cfg.Minio.RootPassword
	if rootPassword == "" {
		panic("MinIO root password is not configured")
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
		Secure: false,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	client := &MinioClient{
		Client:      minioClient,
		Endpoint:    endpoint,
		ImageBucket: cfg.Minio.ImageBucket,
		PublicURL:   cfg.Minio.PublicURL,
	}

	if err := client.EnsureBucket(context.Background(), client.ImageBucket); err != nil {
		panic(fmt.Sprintf("Failed to ensure image bucket: %v", err))
	}

	return client
}

func (m *MinioClient) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	if bucketName == "" {
		return false, fmt.Errorf("bucketName cannot be empty")
	}

	exists, err := m.Client.BucketExists(ctx, bucketName)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	return exists, nil
}

// EnsureBucket creates a bucket if it doesn't exist
func (m *MinioClient) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}

	if !exists {
		err := m.Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// UploadImage stores an image object and returns its public reference URL.
func (m *MinioClient) UploadImage(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if objectName == "" {
		return "", fmt.Errorf("objectName cannot be empty")
	}

	_, err := m.Client.PutObject(ctx, m.ImageBucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", m.PublicURL, m.ImageBucket, objectName), nil
}

func (m *MinioClient) RemoveImage(ctx context.Context, objectName string) error {
	if objectName == "" {
		return fmt.Errorf("objectName cannot be empty")
	}

	err := m.Client.RemoveObject(ctx, m.ImageBucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove image: %w", err)
	}

	return nil
}
