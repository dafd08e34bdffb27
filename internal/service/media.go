package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Upload limits and buckets.
const (
	MaxUploadSize = 10 * 1024 * 1024 // 10MB

	BucketImages = "images" // hero and general site imagery
	BucketTeam   = "team"   // team carousel photos
)

// allowedImageExts lists the accepted upload extensions.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// MediaService stores uploaded images under per-bucket directories and hands
// back their public URLs.
type MediaService struct {
	uploadDir     string
	publicBaseURL string
}

// NewMediaService creates a media service rooted at uploadDir. publicBaseURL
// is an optional absolute prefix for returned URLs.
func NewMediaService(uploadDir, publicBaseURL string) *MediaService {
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	return &MediaService{
		uploadDir:     uploadDir,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Upload saves a file into the given bucket under a generated name and
// returns its public URL. The stored name is the upload timestamp plus a
// random suffix, keeping the original extension.
func (s *MediaService) Upload(file io.Reader, originalName, bucket string) (string, error) {
	if bucket != BucketImages && bucket != BucketTeam {
		return "", fmt.Errorf("unknown bucket %q", bucket)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("file type %q is not allowed", ext)
	}

	fileName := generateFileName(ext)

	dir := filepath.Join(s.uploadDir, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	filePath := filepath.Join(dir, fileName)
	out, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer func() { _ = out.Close() }()

	written, err := io.Copy(out, io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		_ = os.Remove(filePath)
		return "", fmt.Errorf("writing file: %w", err)
	}
	if written > MaxUploadSize {
		_ = os.Remove(filePath)
		return "", fmt.Errorf("file size exceeds maximum allowed (%d bytes)", MaxUploadSize)
	}

	return s.PublicURL(bucket, fileName), nil
}

// Delete removes an uploaded file by bucket and name. Missing files are not
// an error.
func (s *MediaService) Delete(bucket, fileName string) error {
	// Base() guards against path traversal in stored names.
	filePath := filepath.Join(s.uploadDir, bucket, filepath.Base(fileName))
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing file: %w", err)
	}
	return nil
}

// PublicURL returns the public URL for a stored file.
func (s *MediaService) PublicURL(bucket, fileName string) string {
	return fmt.Sprintf("%s/uploads/%s/%s", s.publicBaseURL, bucket, fileName)
}

// UploadDir returns the root uploads directory, for static file serving.
func (s *MediaService) UploadDir() string {
	return s.uploadDir
}

// generateFileName builds a collision-resistant stored name: upload time in
// unix milliseconds, a random suffix, and the original extension.
func generateFileName(ext string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
