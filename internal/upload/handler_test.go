package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, files ...testFile) *http.Request {
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

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestUploadFilesEndpoint(t *testing.T) {
	svc, _ := newTestService(t)
	h := NewUploadHandler(svc)
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(multipartRequest(t, testFile{name: "report.pdf", content: pdfBytes}), rec)

	require.NoError(t, h.UploadFiles(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Attachments []Attachment `json:"attachments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Attachments, 1)
	assert.Equal(t, "application/pdf", body.Attachments[0].Mimetype)
}

func TestUploadFilesRequiresFilesField(t *testing.T) {
	svc, _ := newTestService(t)
	h := NewUploadHandler(svc)
	e := echo.New()

	// Multipart body without the "files" field.
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("other", "value"))
	require.NoError(t, writer.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.UploadFiles(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUploadFilesRejectionSurfacesCode(t *testing.T) {
	svc, _ := newTestService(t)
	h := NewUploadHandler(svc)
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(multipartRequest(t, testFile{name: "anim.gif", content: gifBytes}), rec)

	err := h.UploadFiles(c)
	var upErr *Error
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, CodeUnexpectedFile, upErr.Code)
}
