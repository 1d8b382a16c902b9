package blob

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/Leo-Expose/PokeBase/internal/errors"
)

// S3Config holds construction parameters for an S3-backed sprite source.
// Credentials fall back to the default AWS chain when not set explicitly;
// Endpoint and PathStyle support MinIO and other S3-compatible stores.
type S3Config struct {
	Region          string
	Bucket          string
	Prefix          string // optional key prefix inside the bucket
	Endpoint        string // optional custom endpoint
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	PathStyle       bool
}

// Validate ensures all required parameters are provided
func (c *S3Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Bucket == "" {
		vb.RequiredField("Bucket")
	}

	return vb.Build()
}

// S3 serves sprites from a single S3-compatible bucket.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3 constructs an S3 sprite source from cfg.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})

	return &S3{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (s *S3) Driver() Driver { return DriverS3 }

func (s *S3) Open(ctx context.Context, key string) (*Object, error) {
	clean, err := sanitizeKey(key)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + clean),
	})
	if err != nil {
		var noSuchKey *s3types.NoSuchKey
		if stderrors.As(err, &noSuchKey) {
			return nil, errors.NotFoundf("sprite %q not found", key)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to fetch sprite %q", key))
	}

	obj := &Object{Body: out.Body, ContentType: contentTypeFor(clean)}
	if out.ContentLength != nil {
		obj.Size = *out.ContentLength
	}
	if out.ContentType != nil && *out.ContentType != "" {
		obj.ContentType = *out.ContentType
	}
	return obj, nil
}
