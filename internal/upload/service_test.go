package upload

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"NoticeBoard/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 24)...)
	gifBytes = append([]byte("GIF89a"), bytes.Repeat([]byte{0}, 24)...)
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")
)

type testFile struct {
	name    string
	content []byte
}

// fileHeaders builds real multipart file headers by writing and re-parsing
// a form, the same way they arrive in a request.
func fileHeaders(t *testing.T, files ...testFile) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["files"]
}

func newTestService(t *testing.T) (*UploadService, *config.UploadConfig) {
	t.Helper()
	cfg := &config.UploadConfig{
		Dir:         t.TempDir(),
		MaxFileSize: 10 * 1024 * 1024,
		MaxFiles:    5,
	}
	return NewUploadService(cfg, zap.NewNop()), cfg
}

var storedNamePattern = regexp.MustCompile(`^\d+-[0-9a-f]{16}\.pdf$`)

func TestSaveFilesStoresPDF(t *testing.T) {
	svc, cfg := newTestService(t)

	attachments, err := svc.SaveFiles(fileHeaders(t, testFile{name: "report.pdf", content: pdfBytes}))
	require.NoError(t, err)
	require.Len(t, attachments, 1)

	att := attachments[0]
	assert.Regexp(t, storedNamePattern, att.Filename)
	assert.Equal(t, "report.pdf", att.Originalname)
	assert.Equal(t, "application/pdf", att.Mimetype)
	assert.Equal(t, int64(len(pdfBytes)), att.Size)
	assert.Equal(t, "/uploads/"+att.Filename, att.URL)

	stored, err := os.ReadFile(filepath.Join(cfg.Dir, att.Filename))
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, stored)
}

func TestSaveFilesAcceptsPNG(t *testing.T) {
	svc, _ := newTestService(t)

	attachments, err := svc.SaveFiles(fileHeaders(t, testFile{name: "logo.png", content: pngBytes}))
	require.NoError(t, err)
	require.Len(t, attachments, 1)
	assert.Equal(t, "image/png", attachments[0].Mimetype)
}

func TestSaveFilesRejectsGIF(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SaveFiles(fileHeaders(t, testFile{name: "anim.gif", content: gifBytes}))
	var upErr *Error
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, CodeUnexpectedFile, upErr.Code)
	assert.Contains(t, upErr.Message, "Unsupported file type")
}

func TestSaveFilesSniffsContentNotName(t *testing.T) {
	svc, _ := newTestService(t)

	// GIF bytes behind a .png name still get rejected.
	_, err := svc.SaveFiles(fileHeaders(t, testFile{name: "disguised.png", content: gifBytes}))
	var upErr *Error
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, CodeUnexpectedFile, upErr.Code)
}

func TestSaveFilesCountLimit(t *testing.T) {
	svc, _ := newTestService(t)

	files := make([]testFile, 6)
	for i := range files {
		files[i] = testFile{name: "report.pdf", content: pdfBytes}
	}

	_, err := svc.SaveFiles(fileHeaders(t, files...))
	var upErr *Error
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, CodeFileCount, upErr.Code)
}

func TestSaveFilesSizeLimit(t *testing.T) {
	svc, cfg := newTestService(t)
	cfg.MaxFileSize = 8

	_, err := svc.SaveFiles(fileHeaders(t, testFile{name: "report.pdf", content: pdfBytes}))
	var upErr *Error
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, CodeFileSize, upErr.Code)
}

func TestSaveFilesRejectsWholeBatch(t *testing.T) {
	svc, cfg := newTestService(t)

	_, err := svc.SaveFiles(fileHeaders(t,
		testFile{name: "bad.gif", content: gifBytes},
		testFile{name: "good.pdf", content: pdfBytes},
	))
	require.Error(t, err)

	entries, err := os.ReadDir(cfg.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
