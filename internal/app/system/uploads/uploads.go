// Package uploads opens the image store used by the blog editor and checks
// files before they are written to it.
package uploads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Backend types accepted by Open.
const (
	TypeLocal = "local"
	TypeS3    = "s3"
)

// MaxImageBytes caps a single image upload.
const MaxImageBytes = 5 << 20

var (
	ErrTooLarge = errors.New("file exceeds the 5 MB limit")
	ErrNotImage = errors.New("only JPEG, PNG, GIF or WebP images are allowed")
)

var allowedImages = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Config selects and configures the storage backend.
type Config struct {
	Type        string
	LocalPath   string
	LocalURL    string
	S3Region    string
	S3Bucket    string
	S3Prefix    string
	S3PublicURL string
}

// Open builds the store named by cfg.Type.
func Open(ctx context.Context, cfg Config) (storage.Store, error) {
	switch cfg.Type {
	case TypeLocal, "":
		return storage.NewLocal(storage.LocalConfig{
			BasePath: cfg.LocalPath,
			BaseURL:  cfg.LocalURL,
		})
	case TypeS3:
		return storage.NewS3(ctx, storage.S3Config{
			Bucket:  cfg.S3Bucket,
			Region:  cfg.S3Region,
			Prefix:  cfg.S3Prefix,
			BaseURL: strings.TrimSuffix(cfg.S3PublicURL, "/"),
		})
	}
	return nil, fmt.Errorf("uploads: unknown storage type %q", cfg.Type)
}

// Image describes a stored image.
type Image struct {
	Path        string
	URL         string
	Size        int64
	ContentType string
}

// SaveImage validates r as an image no larger than MaxImageBytes and stores
// it under prefix/YYYY/MM/<uuid><ext>.
func SaveImage(ctx context.Context, s storage.Store, prefix string, r io.Reader) (Image, error) {
	buf, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return Image{}, fmt.Errorf("read upload: %w", err)
	}
	if len(buf) > MaxImageBytes {
		return Image{}, ErrTooLarge
	}
	mt := mimetype.Detect(buf)
	ct, _, _ := strings.Cut(mt.String(), ";")
	if !allowedImages[ct] {
		return Image{}, ErrNotImage
	}

	now := time.Now().UTC()
	p := path.Join(prefix, fmt.Sprintf("%04d/%02d", now.Year(), now.Month()), uuid.NewString()+mt.Extension())
	opts := &storage.PutOptions{
		ContentType:  ct,
		CacheControl: "public, max-age=31536000, immutable",
	}
	if err := s.Put(ctx, p, bytes.NewReader(buf), opts); err != nil {
		return Image{}, fmt.Errorf("store image: %w", err)
	}
	return Image{Path: p, URL: s.URL(p), Size: int64(len(buf)), ContentType: ct}, nil
}

// Remove deletes a stored image. A missing object is not an error.
func Remove(ctx context.Context, s storage.Store, p string) error {
	if err := s.Delete(ctx, p); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return nil
}
