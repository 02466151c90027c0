package reports

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	appconfig "aerocode/internal/config"
	"aerocode/internal/domain/entities"
	"aerocode/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the part of *s3.Client the renderer needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Renderer struct {
	client ObjectPutter
	bucket string
	prefix string
	now    func() time.Time
}

var _ interfaces.IReportRenderer = (*S3Renderer)(nil)

func NewS3Renderer(client ObjectPutter, bucket, prefix string) *S3Renderer {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3Renderer{client: client, bucket: bucket, prefix: prefix, now: time.Now}
}

// NewS3Client builds an S3 client from the shared AWS config. A custom
// endpoint (MinIO, LocalStack) switches to path-style addressing.
func NewS3Client(awsCfg aws.Config, cfg appconfig.ReportsConfig) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
}

// Render uploads the snapshot and returns its s3:// locator.
func (r *S3Renderer) Render(ctx context.Context, report entities.AircraftReport) (string, error) {
	body, err := encode(report)
	if err != nil {
		return "", err
	}
	key := r.prefix + fileName(report.Aircraft.Code, r.now())
	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"codigo": report.Aircraft.Code,
		},
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", r.bucket, key, err)
	}
	return fmt.Sprintf("s3://%s/%s", r.bucket, key), nil
}
