package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/sales-calendar/internal/config"
	"github.com/BruksfildServices01/sales-calendar/internal/stats"
)

// S3API is the subset of the S3 client used by Store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store keeps a JSON copy of each day's dashboard in S3.
type Store struct {
	bucket   string
	s3Client S3API
	log      *zap.Logger
}

// NewStore creates an archive Store. If bucket is empty, all operations are no-ops.
func NewStore(s3Client S3API, bucket string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{bucket: bucket, s3Client: s3Client, log: log}
}

// NewS3Client builds a client from the S3 settings. Static keys are used
// when both are set; an endpoint switches to path-style addressing for
// S3-compatible stores.
func NewS3Client(cfg *config.Config) *s3.Client {
	awsCfg := aws.Config{Region: cfg.S3Region}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
}

// Enabled returns true if archival is configured (bucket is set).
func (s *Store) Enabled() bool {
	return s != nil && s.bucket != "" && s.s3Client != nil
}

// Key is where the dashboard for day is stored.
func Key(day time.Time) string {
	return fmt.Sprintf("reports/v1/by-date/%d/%02d/%02d/dashboard.json",
		day.Year(), day.Month(), day.Day())
}

// SaveDashboard overwrites the stored copy for the dashboard's day.
func (s *Store) SaveDashboard(ctx context.Context, day time.Time, d *stats.Dashboard) (string, error) {
	if !s.Enabled() {
		return "", nil
	}

	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("archive: marshal dashboard: %w", err)
	}

	key := Key(day)
	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("archive: s3 put %s: %w", key, err)
	}

	s.log.Info("archived dashboard to S3",
		zap.String("s3_key", key),
		zap.Int("booked", d.Summary.Booked),
		zap.Int("revenue", d.Summary.TotalRevenue),
	)
	return key, nil
}
