package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"video-guestbook/internal/pkg/logger"
)

type S3Storage struct {
	client     *s3.Client
	presigner  *s3.PresignClient
	bucketName string
	log        *logger.Logger
}

func NewS3Storage(ctx context.Context, bucketName, region string, log *logger.Logger) (*S3Storage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("AWS config yüklenemedi: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Storage{
		client:     client,
		presigner:  s3.NewPresignClient(client),
		bucketName: bucketName,
		log:        log.With("storage", "s3", "bucket", bucketName),
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, path string, body io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucketName),
		Key:           aws.String(path),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		// Var olan objenin üzerine yazma
		IfNoneMatch: aws.String("*"),
	})
	if err != nil {
		return fmt.Errorf("S3 upload hatası: %w", err)
	}
	return nil
}

func (s *S3Storage) Remove(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	objects := make([]types.ObjectIdentifier, 0, len(paths))
	for _, path := range paths {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(path)})
	}
	_, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucketName),
		Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
	})
	if err != nil {
		return fmt.Errorf("S3 delete hatası: %w", err)
	}
	return nil
}

func (s *S3Storage) SignedURLs(ctx context.Context, paths []string, expiry time.Duration) (map[string]string, error) {
	urls := make(map[string]string, len(paths))
	for _, path := range paths {
		req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucketName),
			Key:    aws.String(path),
		}, s3.WithPresignExpires(expiry))
		if err != nil {
			// Tek bir obje imzalanamadı diye listeyi bozma
			s.log.Warn("could not presign object", "path", path, "error", err)
			continue
		}
		urls[path] = req.URL
	}
	return urls, nil
}
