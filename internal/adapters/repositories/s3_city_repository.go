package repositories

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"world-travel-planner/internal/catalog"
	"world-travel-planner/internal/config"
	"world-travel-planner/internal/domain"
	"world-travel-planner/internal/platform/obs"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3CityRepository loads the catalog document from an S3-compatible bucket.
type S3CityRepository struct {
	client *minio.Client
	bucket string
	key    string
}

func NewS3CityRepository(cfg config.S3) (*S3CityRepository, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("s3 city repository: MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required")
	}
	if cfg.Bucket == "" || cfg.ObjectKey == "" {
		return nil, errors.New("s3 city repository: bucket and object key are required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 city repository: create client: %w", err)
	}

	return &S3CityRepository{client: client, bucket: cfg.Bucket, key: cfg.ObjectKey}, nil
}

func (s *S3CityRepository) ListCities(ctx context.Context) (_ []domain.City, err error) {
	defer obs.Time(ctx, "cities.s3.ListCities")(&err)

	object, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("list cities: get s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer object.Close()

	cities, err := catalog.Decode(object)
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil, fmt.Errorf("list cities: s3://%s/%s does not exist", s.bucket, s.key)
		}
		return nil, fmt.Errorf("list cities: s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return cities, nil
}

// UploadCities stores cities as the catalog document, creating the bucket
// when it does not exist yet.
func (s *S3CityRepository) UploadCities(ctx context.Context, cities []domain.City) (err error) {
	defer obs.Time(ctx, "cities.s3.UploadCities")(&err)

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("upload cities: check bucket %q: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("upload cities: create bucket %q: %w", s.bucket, err)
		}
		log.Printf("created bucket=%s", s.bucket)
	}

	var buf bytes.Buffer
	if err := catalog.Encode(&buf, cities); err != nil {
		return fmt.Errorf("upload cities: %w", err)
	}

	_, err = s.client.PutObject(
		ctx,
		s.bucket,
		s.key,
		bytes.NewReader(buf.Bytes()),
		int64(buf.Len()),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("upload cities: put s3://%s/%s: %w", s.bucket, s.key, err)
	}

	return nil
}
