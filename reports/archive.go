package reports

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Archive keeps a copy of every exported workbook.
type Archive interface {
	Save(ctx context.Context, filename string, data []byte) error
}

// Dir writes workbooks to a local directory, creating it on demand.
type Dir struct {
	Path string
}

func (d Dir) Save(_ context.Context, filename string, data []byte) error {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}
	target := filepath.Join(d.Path, filepath.Base(filename))
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3Mirror saves to Next and then copies the file to a bucket. Only a
// failure of Next is reported; a failed upload is logged.
type S3Mirror struct {
	Next     Archive
	Bucket   string
	Prefix   string
	uploader uploader
}

func NewS3Mirror(ctx context.Context, next Archive, bucket, prefix string) (*S3Mirror, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	return &S3Mirror{
		Next:     next,
		Bucket:   bucket,
		Prefix:   prefix,
		uploader: manager.NewUploader(s3.NewFromConfig(cfg)),
	}, nil
}

func (m *S3Mirror) Save(ctx context.Context, filename string, data []byte) error {
	if err := m.Next.Save(ctx, filename, data); err != nil {
		return err
	}

	key := path.Join(m.Prefix, filename)
	_, err := m.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(ContentType),
	})
	if err != nil {
		log.Printf("Error uploading day-end report %s to s3://%s/%s: %v", filename, m.Bucket, key, err)
	}
	return nil
}
