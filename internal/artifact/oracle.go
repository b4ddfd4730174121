// Package artifact answers whether a deployment artifact folder exists in the
// artifact bucket. Two sources are available: a fixed fixture table and a live
// listing of the bucket through its S3-compatible API.
package artifact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"espresso-backend/internal/config"
	apperrors "espresso-backend/internal/errors"
)

//go:generate mockgen -source=oracle.go -destination=../mocks/artifact_mocks.go -package=mocks

// Folder is one artifact folder of the bucket
type Folder struct {
	Files     []string  `json:"files" yaml:"files"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Oracle answers artifact existence questions.
// Existence says nothing about whether the artifact contents are valid.
type Oracle interface {
	Exists(ctx context.Context, artifactID string) (bool, error)
	Folders(ctx context.Context) (map[string]Folder, error)
	URI(artifactID string) string
}

// New builds the oracle selected by cfg.ArtifactSource
func New(ctx context.Context, cfg *config.Config) (Oracle, error) {
	switch cfg.ArtifactSource {
	case config.ArtifactSourceFixture, "":
		return NewFixtureOracle(cfg.StorageBucket)
	case config.ArtifactSourceBucket:
		client, err := NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewBucketOracle(client, cfg.StorageBucket), nil
	default:
		return nil, apperrors.ErrUnknownArtifactSource
	}
}

func bucketURI(bucket, artifactID string) string {
	return fmt.Sprintf("gs://%s/%s", bucket, artifactID)
}

// validID rejects ids that could address something other than a top level folder
func validID(artifactID string) bool {
	return artifactID != "" && !strings.Contains(artifactID, "/")
}
