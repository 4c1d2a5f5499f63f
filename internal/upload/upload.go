// Package upload stores product images on disk for the create and update
// handlers. Only image files are accepted and filenames carry a
// timestamp+random suffix so concurrent uploads cannot collide.
package upload

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/jamar2101/Back-End-Artalis/internal/apperr"
)

const (
	// MaxFileSize caps uploads at 5 MB.
	MaxFileSize = 5 << 20

	msgBadType = "Hanya file gambar yang diizinkan (jpg, jpeg, png, webp, gif)!"
	msgTooBig  = "Ukuran file gambar maksimal 5 MB"
)

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type Saver struct {
	Dir string
}

// NewSaver ensures the uploads directory exists.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Saver{Dir: dir}, nil
}

// Save validates and writes one uploaded image, returning its public path
// under /uploads. Files that fail validation later in the request are not
// cleaned up; orphans are accepted, matching the storefront's behavior.
func (s *Saver) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxFileSize {
		return "", apperr.Upload(msgTooBig)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExts[ext] {
		return "", apperr.Upload(msgBadType)
	}
	if !imageContentType(fh.Header.Get("Content-Type")) {
		return "", apperr.Upload(msgBadType)
	}

	name := fmt.Sprintf("product-%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)

	src, err := fh.Open()
	if err != nil {
		return "", apperr.Internal("Gagal membaca file gambar", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", apperr.Internal("Gagal menyimpan file gambar", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apperr.Internal("Gagal menyimpan file gambar", err)
	}

	return path.Join("/uploads", name), nil
}

func imageContentType(ct string) bool {
	switch {
	case strings.Contains(ct, "jpeg"),
		strings.Contains(ct, "jpg"),
		strings.Contains(ct, "png"),
		strings.Contains(ct, "webp"),
		strings.Contains(ct, "gif"):
		return true
	}
	return false
}
