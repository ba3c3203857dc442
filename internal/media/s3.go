package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// S3Options configures the S3 backend.
type S3Options struct {
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
	// PublicURL is the base URL objects are served from. Empty means the
	// virtual-hosted bucket endpoint.
	PublicURL string
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader stores decoded images as S3 objects.
type S3Uploader struct {
	client  objectPutter
	bucket  string
	baseURL string
	newID   func() string
}

// NewS3Uploader builds an uploader using static credentials.
func NewS3Uploader(ctx context.Context, opts S3Options) (*S3Uploader, error) {
	if opts.Bucket == "" {
		return nil, errors.New("s3 bucket is not configured")
	}
	creds := credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion(opts.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return newS3Uploader(s3.NewFromConfig(cfg), opts), nil
}

func newS3Uploader(client objectPutter, opts S3Options) *S3Uploader {
	baseURL := strings.TrimRight(opts.PublicURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.Bucket, opts.Region)
	}
	return &S3Uploader{
		client:  client,
		bucket:  opts.Bucket,
		baseURL: baseURL,
		newID:   uuid.NewString,
	}
}

// Upload decodes file and stores it under folder with a generated name.
func (u *S3Uploader) Upload(ctx context.Context, file, folder string) (Result, error) {
	data, err := DecodeDataURI(file)
	if err != nil {
		return Result{}, err
	}

	mime := mimetype.Detect(data)
	key := objectKey(folder, u.newID(), mime.Extension())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mime.String()),
	})
	if err != nil {
		return Result{}, fmt.Errorf("s3 put object: %w", err)
	}

	return Result{SecureURL: u.baseURL + "/" + key, PublicID: key}, nil
}

func objectKey(folder, id, ext string) string {
	return path.Join(strings.Trim(folder, "/"), id+ext)
}
