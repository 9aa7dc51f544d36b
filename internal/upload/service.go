package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"NoticeBoard/internal/config"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// The accepted upload content types. Checked against the sniffed content,
// not the declared part header.
var allowedMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"application/pdf",
}

// Attachment describes one stored upload as returned to the client. URL is
// the opaque reference a notice keeps in its attachments list.
type Attachment struct {
	Filename     string `json:"filename"`
	Originalname string `json:"originalname"`
	Mimetype     string `json:"mimetype"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}

// UploadService stores attachment files on local disk.
type UploadService struct {
	cfg    *config.UploadConfig
	logger *zap.Logger
}

// NewUploadService creates a new UploadService.
func NewUploadService(cfg *config.UploadConfig, logger *zap.Logger) *UploadService {
	return &UploadService{cfg: cfg, logger: logger}
}

// SaveFiles stores a batch of uploaded files, enforcing the per-request
// count limit, the per-file size limit and the content-type whitelist. The
// first violation fails the whole batch.
func (s *UploadService) SaveFiles(files []*multipart.FileHeader) ([]Attachment, error) {
	if len(files) > s.cfg.MaxFiles {
		return nil, &Error{
			Code:    CodeFileCount,
			Message: fmt.Sprintf("Too many files: at most %d per request", s.cfg.MaxFiles),
		}
	}

	attachments := make([]Attachment, 0, len(files))
	for _, fh := range files {
		att, err := s.saveFile(fh)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, att)
	}
	return attachments, nil
}

func (s *UploadService) saveFile(fh *multipart.FileHeader) (Attachment, error) {
	if fh.Size > s.cfg.MaxFileSize {
		return Attachment{}, &Error{
			Code:    CodeFileSize,
			Message: fmt.Sprintf("File too large: %s exceeds %d bytes", fh.Filename, s.cfg.MaxFileSize),
		}
	}

	src, err := fh.Open()
	if err != nil {
		return Attachment{}, err
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return Attachment{}, err
	}
	if !isAllowed(mtype) {
		return Attachment{}, &Error{
			Code:    CodeUnexpectedFile,
			Message: fmt.Sprintf("Unsupported file type: %s. Allowed: jpg, png, webp, pdf", mtype.String()),
		}
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return Attachment{}, err
	}

	name := config.MakeUploadFilename(fh.Filename, mtype.String())
	dst, err := os.Create(filepath.Join(s.cfg.Dir, name))
	if err != nil {
		return Attachment{}, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return Attachment{}, err
	}

	s.logger.Info("file stored",
		zap.String("filename", name),
		zap.String("mimetype", mtype.String()),
		zap.Int64("size", fh.Size))

	return Attachment{
		Filename:     name,
		Originalname: fh.Filename,
		Mimetype:     mtype.String(),
		Size:         fh.Size,
		URL:          path.Join("/uploads", name),
	}, nil
}

func isAllowed(mtype *mimetype.MIME) bool {
	for _, allowed := range allowedMimeTypes {
		if mtype.Is(allowed) {
			return true
		}
	}
	return false
}
