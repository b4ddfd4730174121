package artifact

import (
	"context"
	"fmt"
	"strings"

	"espresso-backend/internal/config"
	"espresso-backend/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewS3Client creates an S3 client for the artifact bucket. With STORAGE_ENDPOINT set
// (e.g. https://storage.googleapis.com or a MinIO URL) path-style addressing is used.
func NewS3Client(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.StorageRegion),
	}
	if cfg.StorageAccessKey != "" && cfg.StorageSecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.StorageEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.StorageEndpoint)
			o.UsePathStyle = true
		}
	})

	logger.New().WithLabel(logger.LabelArtifactBucket).WithFields(map[string]interface{}{
		"endpoint": cfg.StorageEndpoint,
		"bucket":   cfg.StorageBucket,
	}).Info("artifact bucket client initialized")

	return client, nil
}

// BucketOracle answers existence questions from a live listing of the bucket
type BucketOracle struct {
	client s3.ListObjectsV2APIClient
	bucket string
}

// NewBucketOracle creates an oracle backed by client
func NewBucketOracle(client s3.ListObjectsV2APIClient, bucket string) *BucketOracle {
	return &BucketOracle{client: client, bucket: bucket}
}

// Exists reports whether at least one object lives under "<artifactID>/"
func (o *BucketOracle) Exists(ctx context.Context, artifactID string) (bool, error) {
	if !validID(artifactID) {
		return false, nil
	}

	out, err := o.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(o.bucket),
		Prefix:  aws.String(artifactID + "/"),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		logger.WithContext(ctx).WithLabel(logger.LabelArtifactBucket).WithError(err).
			Errorf("failed to list artifact %s", artifactID)
		return false, fmt.Errorf("failed to list artifact bucket: %w", err)
	}

	return aws.ToInt32(out.KeyCount) > 0 || len(out.Contents) > 0, nil
}

// Folders lists the whole bucket and groups objects by their top level folder.
// A folder marker object ("<id>/") sets created_at; otherwise the first object seen does.
func (o *BucketOracle) Folders(ctx context.Context) (map[string]Folder, error) {
	folders := map[string]Folder{}

	paginator := s3.NewListObjectsV2Paginator(o.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(o.bucket),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logger.WithContext(ctx).WithLabel(logger.LabelArtifactBucket).WithError(err).
				Error("failed to list artifact bucket")
			return nil, fmt.Errorf("failed to list artifact bucket: %w", err)
		}

		for _, object := range page.Contents {
			key := aws.ToString(object.Key)
			idx := strings.Index(key, "/")
			if idx <= 0 {
				continue
			}
			id, rest := key[:idx], key[idx+1:]

			folder, seen := folders[id]
			if !seen || rest == "" {
				folder.CreatedAt = aws.ToTime(object.LastModified)
			}
			if folder.Files == nil {
				folder.Files = []string{}
			}
			if rest != "" {
				folder.Files = append(folder.Files, rest)
			}
			folders[id] = folder
		}
	}

	return folders, nil
}

// URI returns the bucket URI of an artifact folder
func (o *BucketOracle) URI(artifactID string) string {
	return bucketURI(o.bucket, artifactID)
}
