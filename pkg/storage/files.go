package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxFileSizeBytes = 10 * 1024 * 1024 // 10 MB

var (
	ErrEmptyFile       = errors.New("uploaded file is empty")
	ErrFileTooLarge    = errors.New("file size exceeds 10MB limit")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrInvalidPath     = errors.New("invalid file path")
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

var allowedContentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

// FileStore persists uploads on the local filesystem under a single
// root, namespaced by owner id. Rows reference files by relative URL
// (/uploads/resumes/<user_id>/<uuid>.<ext>).
type FileStore struct {
	root         string
	resumeSubdir string
}

func NewFileStore(root, resumeSubdir string) (*FileStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{root: abs, resumeSubdir: resumeSubdir}, nil
}

// SaveResume validates and writes an uploaded resume, returning the
// relative URL to store on the resume row.
func (s *FileStore) SaveResume(userID, filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if len(data) > MaxFileSizeBytes {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}
	if ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0])); ct != "" && !allowedContentTypes[ct] {
		return "", ErrUnsupportedType
	}

	dir := filepath.Join(s.root, s.resumeSubdir, userID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", err
	}

	return "/uploads/" + s.resumeSubdir + "/" + userID + "/" + name, nil
}

// Resolve maps a stored relative URL back to an absolute path, refusing
// anything that escapes the upload root.
func (s *FileStore) Resolve(relativeURL string) (string, error) {
	trimmed := strings.TrimPrefix(relativeURL, "/")
	if !strings.HasPrefix(trimmed, "uploads/") {
		return "", ErrInvalidPath
	}
	subpath := strings.TrimPrefix(trimmed, "uploads/")

	candidate := filepath.Join(s.root, filepath.FromSlash(subpath))
	resolved, err := filepath.Abs(candidate)
	if err != nil {
		return "", ErrInvalidPath
	}
	if resolved != s.root && !strings.HasPrefix(resolved, s.root+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}
	if _, err := os.Stat(resolved); err != nil {
		return "", err
	}
	return resolved, nil
}

// Delete removes the stored file behind a relative URL. Missing files
// are not an error; the row is the source of truth.
func (s *FileStore) Delete(relativeURL string) error {
	path, err := s.Resolve(relativeURL)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return os.Remove(path)
}
