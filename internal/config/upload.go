package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type UploadConfig struct {
	Dir         string
	MaxFileSize int64
	MaxFiles    int
}

func NewUploadConfig() (*UploadConfig, error) {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &UploadConfig{
		Dir:         dir,
		MaxFileSize: 10 * 1024 * 1024,
		MaxFiles:    5,
	}, nil
}

// SafeExtFromMimetype maps the accepted upload MIME types to an extension,
// used when the original filename carries none.
func SafeExtFromMimetype(mimetype string) string {
	switch mimetype {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}

// MakeUploadFilename generates a stored filename of the form
// <unix-millis>-<random-hex><ext>. Nothing of the user-supplied name is
// kept except the extension.
func MakeUploadFilename(originalname, mimetype string) string {
	ext := strings.ToLower(filepath.Ext(originalname))
	if ext == "" {
		ext = SafeExtFromMimetype(mimetype)
	}

	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(buf), ext)
}
