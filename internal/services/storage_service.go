// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/boriwala/catalog-backend/internal/config"
	"github.com/boriwala/catalog-backend/internal/utils"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// StorageService stores uploaded images on S3 when AWS credentials are
// configured, otherwise on local disk under the configured upload directory.
type StorageService struct {
	s3Client *s3.S3
	cfg      *config.Config
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.AWS.AccessKeyID == "" {
		return &StorageService{cfg: cfg}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{s3Client: s3.New(sess), cfg: cfg}, nil
}

// UploadImage validates and stores one uploaded image. Limits come from the
// upload config; only common image extensions are accepted.
func (s *StorageService) UploadImage(file multipart.File, header *multipart.FileHeader, folder string) (*UploadResult, error) {
	if header.Size > s.cfg.Upload.MaxFileSize {
		return nil, fmt.Errorf("file exceeds the %dMB size limit", s.cfg.Upload.MaxFileSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isImageExtension(ext) {
		return nil, fmt.Errorf("file type %s is not allowed, upload an image", ext)
	}

	key, err := s.buildKey(ext, folder)
	if err != nil {
		return nil, err
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	if s.s3Client != nil {
		return s.uploadToS3(fileBytes, key, contentType)
	}
	return s.uploadToLocal(fileBytes, key, contentType)
}

func (s *StorageService) uploadToS3(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:      s.publicURL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) uploadToLocal(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	path := filepath.Join(s.cfg.Upload.LocalDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(path, fileBytes, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		URL:      "/uploads/" + key,
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

// DeleteImage removes a stored object by key.
func (s *StorageService) DeleteImage(key string) error {
	if s.s3Client == nil {
		path := filepath.Join(s.cfg.Upload.LocalDir, filepath.FromSlash(key))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete file: %w", err)
		}
		return nil
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.AWS.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

// buildKey derives a unique object key from a timestamp and a random suffix.
func (s *StorageService) buildKey(ext, folder string) (string, error) {
	suffix, err := utils.GenerateRandomString(8)
	if err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
	if folder == "" {
		folder = "general"
	}
	return folder + "/" + name, nil
}

func (s *StorageService) publicURL(key string) string {
	if s.cfg.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.cfg.AWS.CloudFrontURL, "/"), key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.cfg.AWS.S3Bucket, s.cfg.AWS.Region, key)
}

func isImageExtension(ext string) bool {
	for _, allowed := range imageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
