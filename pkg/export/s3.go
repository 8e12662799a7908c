package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	werrors "github.com/vango-dev/weave/internal/errors"
)

// ObjectPutter is the subset of *s3.Client used by S3Publisher.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options configures an S3Publisher.
type S3Options struct {
	// Bucket receives the objects. Required.
	Bucket string

	// Prefix is prepended to every key (e.g., "snapshots/").
	Prefix string

	// Region is the bucket's region. When empty the SDK's default
	// resolution applies (AWS_REGION, then the shared config profile).
	Region string

	// Endpoint overrides the S3 endpoint, for S3-compatible stores. Path
	// style addressing is used when set.
	Endpoint string

	// Client is used instead of building one from the fields above.
	Client ObjectPutter
}

// S3Publisher stores snapshots as S3 objects.
type S3Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
}

// NewS3Publisher creates an S3 publisher. Without an explicit Client,
// the SDK's default credential chain and shared config are loaded.
func NewS3Publisher(ctx context.Context, opts S3Options) (*S3Publisher, error) {
	if opts.Bucket == "" {
		return nil, werrors.New("E143").WithDetail("no bucket configured")
	}
	client := opts.Client
	if client == nil {
		var loadOpts []func(*awsconfig.LoadOptions) error
		if opts.Region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, werrors.New("E143").WithDetail("load AWS config").Wrap(err)
		}
		client = s3.NewFromConfig(cfg, func(o *s3.Options) {
			if opts.Endpoint != "" {
				o.BaseEndpoint = aws.String(opts.Endpoint)
				o.UsePathStyle = true
			}
		})
	}
	return &S3Publisher{
		client: client,
		bucket: opts.Bucket,
		prefix: opts.Prefix,
	}, nil
}

// Publish puts body at prefix+key.
func (p *S3Publisher) Publish(ctx context.Context, key string, body []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(p.prefix + key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType(key)),
		Metadata: map[string]string{
			"export-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return failed(key, fmt.Errorf("s3 put failed: %w", err))
	}
	return nil
}

// Location returns the s3:// URL for key.
func (p *S3Publisher) Location(key string) string {
	return "s3://" + p.bucket + "/" + p.prefix + key
}

func contentType(key string) string {
	switch {
	case strings.HasSuffix(key, ".html"):
		return "text/html; charset=utf-8"
	case strings.HasSuffix(key, ".txt"):
		return "text/plain; charset=utf-8"
	}
	return "application/octet-stream"
}
