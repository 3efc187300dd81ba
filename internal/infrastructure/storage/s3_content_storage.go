// Package storage keeps uploaded inspiration photos in S3.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// S3API is the subset of the S3 client used by S3ContentStorage.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var _ S3API = (*s3.Client)(nil)

type S3ContentStorage struct {
	client        S3API
	bucket        string
	publicBaseURL string
}

var _ interfaces.IContentStorage = (*S3ContentStorage)(nil)

// NewS3ContentStorage stores objects in bucket. Public URLs are built from
// publicBaseURL, or the virtual-hosted bucket URL in region when empty.
func NewS3ContentStorage(client S3API, bucket, region, publicBaseURL string) *S3ContentStorage {
	base := strings.TrimRight(publicBaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return &S3ContentStorage{client: client, bucket: bucket, publicBaseURL: base}
}

// Upload writes data under category/<uuid><ext>, with the content type
// sniffed from the bytes.
func (s *S3ContentStorage) Upload(ctx context.Context, data []byte, category string) (entities.MediaRef, error) {
	mt := mimetype.Detect(data)
	key := fmt.Sprintf("%s/%s%s", category, uuid.NewString(), mt.Extension())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mt.String()),
	})
	if err != nil {
		return entities.MediaRef{}, errors.Wrapf(err, "put object %s", key)
	}
	log.WithFields(log.Fields{"key": key, "size": len(data), "content_type": mt.String()}).Debug("[storage][s3] uploaded")
	return entities.MediaRef{URL: s.publicBaseURL + "/" + key, StorageID: key}, nil
}

func (s *S3ContentStorage) Delete(ctx context.Context, storageID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageID),
	})
	if err != nil {
		return errors.Wrapf(err, "delete object %s", storageID)
	}
	return nil
}
