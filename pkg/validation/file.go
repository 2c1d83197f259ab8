package validation

import (
	"errors"
	"fmt"
	"strings"

	"cadastrobot/pkg/models"
)

// MaxUploadSize is the largest file the registration server accepts.
const MaxUploadSize = 16 * 1024 * 1024

var (
	ErrFileTooLarge = errors.New("file exceeds upload limit")
	ErrFileType     = errors.New("file type not allowed")
)

var allowedTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
}

// ValidateFile checks size before type, so an oversized file is rejected
// whatever it claims to be.
func ValidateFile(f models.FileInfo) error {
	if f.Size > MaxUploadSize {
		return fmt.Errorf("%s (%d bytes): %w", f.Name, f.Size, ErrFileTooLarge)
	}
	if !allowedTypes[strings.ToLower(f.MIME)] {
		return fmt.Errorf("%s (%q): %w", f.Name, f.MIME, ErrFileType)
	}
	return nil
}

// IsImage reports whether the declared type gets a preview.
func IsImage(f models.FileInfo) bool {
	return strings.HasPrefix(strings.ToLower(f.MIME), "image/")
}

// AlertMessage turns a ValidateFile error into the blocking alert text.
func AlertMessage(err error) string {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		return "Arquivo muito grande. Tamanho máximo permitido: 16MB"
	case errors.Is(err, ErrFileType):
		return "Tipo de arquivo não permitido. Apenas imagens (JPG, PNG, GIF) e PDF são aceitos."
	default:
		return "Arquivo inválido."
	}
}
