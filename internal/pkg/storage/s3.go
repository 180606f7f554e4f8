package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Storage — хранилище заметок поверх S3/MinIO. Папок в S3 нет,
// существование папки обозначается нулевым объектом с ключом "<путь>/".
type S3Storage struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
}

func NewS3Storage(endpoint, region, bucket, accessKeyID, secretAccessKey string) *S3Storage {
	s3Opts := []func(*s3.Options){}

	if endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // обязательно для MinIO
		})
	}

	credsProvider := credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")

	awsCfg := aws.Config{
		Region:      region,
		Credentials: credsProvider,
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)

	return &S3Storage{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   bucket,
	}
}

func (s *S3Storage) key(remotePath string) string {
	return strings.TrimPrefix(remotePath, "/")
}

func (s *S3Storage) Exists(ctx context.Context, remotePath string) (bool, error) {
	// путь может быть и файлом, и папкой-маркером
	for _, key := range []string{s.key(remotePath), s.key(remotePath) + "/"} {
		_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		if err == nil {
			return true, nil
		}
		var notFound *types.NotFound
		if !errors.As(err, &notFound) {
			return false, fmt.Errorf("проверка %s: %w", remotePath, err)
		}
	}
	return false, nil
}

func (s *S3Storage) CreateDirectory(ctx context.Context, remotePath string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(remotePath) + "/"),
		Body:   bytes.NewReader(nil),
	})
	if err != nil {
		return fmt.Errorf("создание папки %s: %w", remotePath, err)
	}
	return nil
}

func (s *S3Storage) Upload(ctx context.Context, remotePath, localPath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(remotePath)),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("загрузка %s: %w", remotePath, err)
	}
	return nil
}

func (s *S3Storage) HealthCheck(ctx context.Context) error {
	// Простая проверка — пытаемся листовать bucket'ы
	if _, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{}); err != nil {
		return fmt.Errorf("storage health check failed: %w", err)
	}
	return nil
}
