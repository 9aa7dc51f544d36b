package config

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUploadFilename(t *testing.T) {
	name := MakeUploadFilename("Quarterly Report.PDF", "application/pdf")
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]{16}\.pdf$`), name)

	// No extension on the original name: fall back to the MIME table.
	name = MakeUploadFilename("photo", "image/webp")
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]{16}\.webp$`), name)

	// Unknown MIME and no extension: stored without one.
	name = MakeUploadFilename("blob", "application/octet-stream")
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]{16}$`), name)
}

func TestSafeExtFromMimetype(t *testing.T) {
	assert.Equal(t, ".jpg", SafeExtFromMimetype("image/jpeg"))
	assert.Equal(t, ".png", SafeExtFromMimetype("image/png"))
	assert.Equal(t, ".webp", SafeExtFromMimetype("image/webp"))
	assert.Equal(t, ".pdf", SafeExtFromMimetype("application/pdf"))
	assert.Equal(t, "", SafeExtFromMimetype("image/gif"))
}

func TestNewUploadConfigCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "attachments")
	t.Setenv("UPLOAD_DIR", dir)

	cfg, err := NewUploadConfig()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
	assert.Equal(t, 5, cfg.MaxFiles)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
