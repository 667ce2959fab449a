package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/internal/logging/types"
)

// SpacesClient wraps the S3 client for object storage operations against an
// S3-compatible Spaces bucket
type SpacesClient struct {
	client     *s3.S3
	bucketName string
	bucketURL  string
	cdnURL     string
	logger     types.Logger
}

// NewSpacesClient creates a new Spaces client
func NewSpacesClient(cfg *config.Config) (*SpacesClient, error) {
	logger := logging.GetGlobalLogger()

	if cfg.Storage.Spaces.AccessKeyID == "" || cfg.Storage.Spaces.AccessKeySecret == "" {
		return nil, fmt.Errorf("object storage credentials are required")
	}

	if cfg.Storage.Spaces.BucketURL == "" {
		return nil, fmt.Errorf("object storage bucket URL is required")
	}

	endpoint := fmt.Sprintf("https://%s.digitaloceanspaces.com", cfg.Storage.Spaces.Region)

	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			cfg.Storage.Spaces.AccessKeyID,
			cfg.Storage.Spaces.AccessKeySecret,
			"",
		),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(cfg.Storage.Spaces.Region),
		S3ForcePathStyle: aws.Bool(false), // virtual-hosted-style for Spaces
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage session: %w", err)
	}

	logger.Info("Object storage client initialized", map[string]interface{}{
		"bucket_name": cfg.Storage.Spaces.BucketName,
		"region":      cfg.Storage.Spaces.Region,
		"endpoint":    endpoint,
	})

	return &SpacesClient{
		client:     s3.New(sess),
		bucketName: cfg.Storage.Spaces.BucketName,
		bucketURL:  cfg.Storage.Spaces.BucketURL,
		cdnURL:     cfg.Storage.Spaces.CDNEndpoint,
		logger:     logger,
	}, nil
}

// UploadPDFExport uploads a rendered PDF under the given public id and
// returns its public URL
func (sc *SpacesClient) UploadPDFExport(publicID string, pdfData []byte) (string, error) {
	objectKey := publicID + ".pdf"

	sc.logger.Info("Uploading PDF export", map[string]interface{}{
		"object_key": objectKey,
		"size_bytes": len(pdfData),
	})

	_, err := sc.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(sc.bucketName),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(pdfData),
		ContentType: aws.String("application/pdf"),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		sc.logger.Error("Failed to upload PDF export", map[string]interface{}{
			"object_key": objectKey,
			"error":      err.Error(),
		})
		return "", fmt.Errorf("failed to upload PDF export: %w", err)
	}

	url := sc.PublicURL(objectKey)

	sc.logger.Info("PDF export uploaded", map[string]interface{}{
		"object_key": objectKey,
		"url":        url,
	})

	return url, nil
}

// PublicURL constructs the public URL for an object key, preferring the CDN
// endpoint when configured
func (sc *SpacesClient) PublicURL(objectKey string) string {
	if sc.cdnURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(sc.cdnURL, "/"), objectKey)
	}

	bucketBaseURL := strings.TrimRight(sc.bucketURL, "/")
	if !strings.HasPrefix(bucketBaseURL, "https://") {
		bucketBaseURL = "https://" + bucketBaseURL
	}
	return fmt.Sprintf("%s/%s", bucketBaseURL, objectKey)
}

// IsHealthy checks if the Spaces client can communicate with the service
func (sc *SpacesClient) IsHealthy() bool {
	_, err := sc.client.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(sc.bucketName),
	})

	healthy := err == nil
	if !healthy {
		sc.logger.Error("Object storage health check failed", map[string]interface{}{
			"bucket_name": sc.bucketName,
			"error":       err.Error(),
		})
	}

	return healthy
}
