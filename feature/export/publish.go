package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"excel-exporter/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// publishPrefix is the object-key folder the documents land under, matching
// the layout the game client expects.
const publishPrefix = "gamedata/"

// Publisher uploads exported documents to object storage.
type Publisher struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewPublisher creates a new publisher.
func NewPublisher(client storage.Client, bucket string, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, bucket: bucket, logger: logger}
}

// Publish uploads every .json document in dataDir to the bucket, creating
// the bucket if needed. Per-object failures are logged and skipped; the
// returned count is the number of objects uploaded.
func (p *Publisher) Publish(ctx context.Context, dataDir string) (int, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return 0, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return 0, fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
		p.logger.Info("Created bucket", zap.String("bucket", p.bucket))
	}

	files, err := filepath.Glob(filepath.Join(dataDir, "*.json"))
	if err != nil {
		return 0, fmt.Errorf("failed to scan data dir: %w", err)
	}
	if len(files) == 0 {
		p.logger.Warn("No documents to publish", zap.String("dir", dataDir))
		return 0, nil
	}

	uploaded := 0
	for _, file := range files {
		key := publishPrefix + filepath.Base(file)
		if err := p.putFile(ctx, file, key); err != nil {
			p.logger.Error("Failed to upload document",
				zap.String("file", file),
				zap.String("object", key),
				zap.Error(err),
			)
			continue
		}
		uploaded++
		p.logger.Info("Uploaded document", zap.String("object", key))
	}

	return uploaded, nil
}

// Verify lists the bucket and returns the document names that did not make
// it under the publish prefix. Run after Publish to confirm the bucket holds
// everything the game client will request.
func (p *Publisher) Verify(ctx context.Context, dataDir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dataDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan data dir: %w", err)
	}

	var missing []string
	for _, file := range files {
		name := filepath.Base(file)
		key := publishPrefix + name
		opts := minio.ListObjectsOptions{
			Prefix:  key,
			MaxKeys: 1,
		}

		found := false
		for obj := range p.client.ListObjects(ctx, p.bucket, opts) {
			if obj.Err == nil && obj.Key == key {
				found = true
			}
			break
		}
		if !found {
			missing = append(missing, name)
			p.logger.Warn("Document missing from bucket", zap.String("object", key))
		}
	}

	return missing, nil
}

func (p *Publisher) putFile(ctx context.Context, path, key string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	_, err = p.client.PutObject(ctx, p.bucket, key, f, info.Size(), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	return err
}
