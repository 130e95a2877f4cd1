// Package filex holds filesystem helpers: preparing directories for local
// state and reading image attachments for upload.
package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/gabriel-vasile/mimetype"
)

// MaxAttachmentSize bounds images read for upload.
const MaxAttachmentSize = 16 << 20

var (
	ErrNotImage   = errors.New("file is not an image")
	ErrTooLarge   = errors.New("file is too large")
	ErrEmptyFile  = errors.New("file is empty")
	ErrNotRegular = errors.New("not a regular file")
)

// EnsureParentDir creates the directory that will hold path, if any.
// It returns the absolute directory path.
func EnsureParentDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", path, err)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// LoadImage reads path and returns it as an attachment, with the content
// type sniffed from the bytes rather than trusted from the extension.
func LoadImage(path string) (models.Attachment, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return models.Attachment{}, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}
	if fi.Size() == 0 {
		return models.Attachment{}, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	if fi.Size() > MaxAttachmentSize {
		return models.Attachment{}, fmt.Errorf("%s: %w", path, ErrTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("read %s: %w", path, err)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return models.Attachment{}, fmt.Errorf("%s (%s): %w", path, mt.String(), ErrNotImage)
	}

	return models.Attachment{
		Name:        filepath.Base(path),
		ContentType: mt.String(),
		Data:        data,
	}, nil
}
