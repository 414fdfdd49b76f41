// Package artifact persists derived text blobs (subtitle files) in object
// storage and hands out retrievable URLs for them.
package artifact

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	Bucket          string
	// PublicBaseURL is the externally reachable root under which stored
	// objects can be fetched, e.g. https://cdn.example.com.
	PublicBaseURL string
}

type Store struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	s := &Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket: %w", err)
		}
	}

	return s, nil
}

func objectKey(externalID string) string {
	return fmt.Sprintf("captions/%s.vtt", externalID)
}

// Put stores the subtitle text keyed by the medium's external id and
// returns the URL it can be fetched from.
func (s *Store) Put(ctx context.Context, externalID, subtitleText string) (string, error) {
	key := objectKey(externalID)
	reader := strings.NewReader(subtitleText)

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, int64(reader.Len()), minio.PutObjectOptions{
		ContentType: "text/vtt",
	})
	if err != nil {
		return "", fmt.Errorf("put artifact: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, key), nil
}

// Get reads back the stored subtitle text for a medium.
func (s *Store) Get(ctx context.Context, externalID string) (string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectKey(externalID), minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("get artifact: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("read artifact: %w", err)
	}

	return string(data), nil
}
