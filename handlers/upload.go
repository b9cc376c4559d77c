package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	maxUploadSize   = 10 << 20 // 10MB per file
	maxUploadMemory = 32 << 20
)

var allowedUploadTypes = []string{"pdf", "doc", "docx", "jpg", "jpeg", "png"}

// saveUpload stores the uploaded file from the named multipart field under
// dir and returns its serving path. A missing file is not an error; the
// caller leaves the attachment field alone in that case.
func saveUpload(r *http.Request, field, dir string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		return "", errors.New("file exceeds the 10MB upload limit")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if !uploadTypeAllowed(ext) || !uploadTypeAllowed(header.Header.Get("Content-Type")) {
		return "", errors.New("only documents and images are allowed")
	}

	name := uuid.NewString() + "." + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

// uploadTypeAllowed accepts a value when it contains one of the allowed
// tokens, covering both plain extensions and content types such as
// application/vnd.openxmlformats-officedocument.wordprocessingml.document.
func uploadTypeAllowed(value string) bool {
	for _, t := range allowedUploadTypes {
		if strings.Contains(value, t) {
			return true
		}
	}
	return false
}
