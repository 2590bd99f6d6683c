// Package upload stores multipart image uploads under the public images
// directory and derives the filenames recorded in the database.
package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Store saves uploaded images to a fixed public directory.
type Store struct {
	dir    string
	logger *zap.Logger
}

func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes the uploaded file to disk under a derived name and returns
// the filename to record. recordName is the human-readable name of the
// owning record and becomes part of the filename.
func (s *Store) Save(c *gin.Context, file *multipart.FileHeader, recordName string) (string, error) {
	filename := DeriveFilename(file.Filename, recordName, time.Now())
	dst := filepath.Join(s.dir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		s.logger.Error("Failed to save uploaded file",
			zap.String("dst", dst),
			zap.Error(err))
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}
	s.logger.Info("Stored uploaded image",
		zap.String("filename", filename),
		zap.Int64("size", file.Size))
	return filename, nil
}

// DeriveFilename builds a filesystem-safe name from the record name plus
// the original file name, prefixed with unix nanos so repeated uploads of
// the same file never collide.
func DeriveFilename(original, recordName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))

	slug := Slugify(recordName)
	if slug == "" {
		slug = Slugify(base)
	}
	if slug == "" {
		slug = "image"
	}
	return fmt.Sprintf("%d_%s%s", now.UnixNano(), slug, ext)
}

// Slugify lowercases, strips diacritics and collapses anything that is not
// a letter or digit into single dashes.
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, name)
	if err != nil {
		ascii = name
	}

	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(ascii) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
