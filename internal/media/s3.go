package media

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/frahmantamala/hr-directory/internal"
)

// S3Store implements Store on top of an S3 bucket.
type S3Store struct {
	client  *s3.Client
	bucket  string
	prefix  string
	baseURL string
}

func NewS3Store(ctx context.Context, cfg internal.MediaConfig) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("media bucket is required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
	}

	return &S3Store{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		prefix:  cfg.KeyPrefix,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// uploadTimeout bounds a single object upload; deletes use the package-wide
// default.
const uploadTimeout = 30 * time.Second

// Upload stores the object under a generated key and returns its public URL.
func (s *S3Store) Upload(ctx context.Context, body io.Reader, contentType, folder string) (string, error) {
	ext := extensionFor(contentType)
	key := path.Join(s.prefix, folder, fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext))

	ctx, cancel := internal.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("media upload: %w", err)
	}

	return s.baseURL + "/" + key, nil
}

// Delete removes the object the public URL points at. URLs that do not belong
// to this store (legacy local paths, other hosts) are ignored.
func (s *S3Store) Delete(ctx context.Context, publicURL string) error {
	key, ok := s.keyFromURL(publicURL)
	if !ok {
		return nil
	}

	ctx, cancel := internal.WithTimeout(ctx, 0)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("media delete: %w", err)
	}
	return nil
}

// keyFromURL recovers the object key from a public URL produced by Upload.
func (s *S3Store) keyFromURL(publicURL string) (string, bool) {
	if publicURL == "" || strings.HasPrefix(publicURL, "/uploads/") {
		return "", false
	}

	u, err := url.Parse(publicURL)
	if err != nil {
		return "", false
	}

	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", false
	}
	if s.prefix != "" && !strings.HasPrefix(key, s.prefix+"/") {
		return "", false
	}
	return key, true
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
