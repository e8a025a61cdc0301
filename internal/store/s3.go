package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// S3API is the slice of the S3 client the store needs. *s3.Client
// satisfies it; tests substitute a fake.
type S3API interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store loads every object under a bucket prefix and decodes each as
// newline-delimited JSON, one resource per line.
type S3Store struct {
	client S3API
	bucket string
	prefix string
	log    zerolog.Logger
}

// NewS3Store creates a store over an S3 bucket.
func NewS3Store(client S3API, bucket, prefix string, log zerolog.Logger) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix, log: log}
}

// Load lists the bucket (paginated) and reads every object.
func (s *S3Store) Load(ctx context.Context) ([]map[string]any, error) {
	var resources []map[string]any

	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	if s.prefix != "" {
		input.Prefix = aws.String(s.prefix)
	}

	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.bucket, err)
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			objResources, err := s.loadObject(ctx, key)
			if err != nil {
				return nil, err
			}
			resources = append(resources, objResources...)
		}
	}

	s.log.Info().Str("bucket", s.bucket).Int("resources", len(resources)).Msg("fetched resource batch")
	return resources, nil
}

func (s *S3Store) loadObject(ctx context.Context, key string) ([]map[string]any, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer out.Body.Close()

	resources, badLines, err := decodeNDJSON(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	if badLines > 0 {
		s.log.Warn().Str("key", key).Int("lines", badLines).Msg("skipped unparseable lines")
	}

	s.log.Debug().Str("key", key).Int("resources", len(resources)).Msg("loaded object")
	return resources, nil
}
