package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"showbook/internal/config"
)

// S3ImageStore uploads venue and artist images to a bucket under images/.
type S3ImageStore struct {
	uploader *manager.Uploader
	bucket   string
	baseURL  string
}

func NewS3ImageStore(cfg *config.S3Config) *S3ImageStore {
	return &S3ImageStore{
		uploader: manager.NewUploader(cfg.Client),
		bucket:   cfg.Bucket,
		baseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

func (s *S3ImageStore) Put(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := ObjectKey(filename)

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

// ObjectKey names an upload images/<uuid><ext>, keeping the lower-cased
// extension of the client file name.
func ObjectKey(filename string) string {
	return "images/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
}
