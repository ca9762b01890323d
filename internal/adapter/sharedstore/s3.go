package sharedstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"lp-publisher/internal/config/configs"
	"lp-publisher/internal/core/domain"
	"lp-publisher/internal/core/port"
)

// S3API is the part of the S3 client the store uses.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store implements port.SharedStore on an S3 bucket.
type S3Store struct {
	client S3API
	bucket string
	codec  codec
}

// NewS3Store builds an S3 client from cfg. Static credentials are used when
// given, otherwise the default AWS credential chain applies. A custom
// endpoint switches to path-style addressing for S3 compatible services.
func NewS3Store(ctx context.Context, cfg configs.SharedStore) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3StoreWithClient(client, cfg.Bucket, cfg.Gzip), nil
}

// NewS3StoreWithClient wraps an existing client.
func NewS3StoreWithClient(client S3API, bucket string, gzip bool) *S3Store {
	return &S3Store{client: client, bucket: bucket, codec: codec{gzip: gzip}}
}

// Write replaces the object under key with the encoded value.
func (s *S3Store) Write(ctx context.Context, key string, value any) error {
	data, err := s.codec.encode(value)
	if err != nil {
		return err
	}
	objectKey := s.codec.objectKey(key)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(s.codec.contentType()),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("%w: s3 put %s: %w", domain.ErrStorageUnavailable, objectKey, err)
	}
	return nil
}

// Read decodes the object under key into dst. A missing object yields
// port.ErrObjectNotFound.
func (s *S3Store) Read(ctx context.Context, key string, dst any) error {
	objectKey := s.codec.objectKey(key)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		var notFound *types.NotFound
		if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
			return fmt.Errorf("s3 get %s: %w", objectKey, port.ErrObjectNotFound)
		}
		return fmt.Errorf("%w: s3 get %s: %w", domain.ErrStorageUnavailable, objectKey, err)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return fmt.Errorf("%w: s3 read %s: %w", domain.ErrStorageUnavailable, objectKey, err)
	}
	return s.codec.decode(data, dst)
}
