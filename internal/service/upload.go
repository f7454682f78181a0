package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/resepku/backend/config"
)

// Uploader stores an uploaded recipe image and yields its relative storage
// path. The path is what gets persisted on the recipe; display resolution
// joins it onto the storage root URL.
type Uploader interface {
	UploadRecipeImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// S3Uploader stores recipe images in an S3 bucket.
type S3Uploader struct {
	s3cfg *config.S3Config
}

// NewS3Uploader creates a new S3Uploader instance
func NewS3Uploader(s3cfg *config.S3Config) *S3Uploader {
	return &S3Uploader{s3cfg: s3cfg}
}

// UploadRecipeImage uploads the file under a generated key and returns the
// key as a relative path.
func (u *S3Uploader) UploadRecipeImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() { _ = src.Close() }()

	key := fmt.Sprintf("recipe-images/%s%s", uuid.New().String(), filepath.Ext(file.Filename))

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = u.s3cfg.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.s3cfg.BucketName),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return key, nil
}
