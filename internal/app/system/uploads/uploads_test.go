package uploads_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bigkoko/kokoadmin/internal/app/system/uploads"
	"github.com/dalemusser/waffle/pantry/storage"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func TestSaveImage(t *testing.T) {
	mem := storage.NewMemory(storage.MemoryConfig{BaseURL: "/uploads"})
	ctx := context.Background()

	img, err := uploads.SaveImage(ctx, mem, "blogs", bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	if img.ContentType != "image/png" || !strings.HasSuffix(img.Path, ".png") {
		t.Errorf("unexpected image %+v", img)
	}
	if !strings.HasPrefix(img.Path, "blogs/") || img.URL != "/uploads/"+img.Path {
		t.Errorf("unexpected path/url %q %q", img.Path, img.URL)
	}
	if img.Size != int64(len(pngHeader)) {
		t.Errorf("size = %d", img.Size)
	}

	got, err := mem.GetBytes(ctx, img.Path)
	if err != nil || !bytes.Equal(got, pngHeader) {
		t.Fatalf("stored bytes mismatch: %v", err)
	}
	info, err := mem.Head(ctx, img.Path)
	if err != nil || info.ContentType != "image/png" {
		t.Errorf("stored content type: %+v %v", info, err)
	}
}

func TestSaveImage_Rejects(t *testing.T) {
	mem := storage.NewMemory(storage.MemoryConfig{})
	ctx := context.Background()

	tests := []struct {
		name string
		body []byte
		want error
	}{
		{"plain text", []byte("just some text"), uploads.ErrNotImage},
		{"shell script", []byte("#!/bin/sh\necho hi\n"), uploads.ErrNotImage},
		{"pdf", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"), uploads.ErrNotImage},
		{"over 5 MB", append(append([]byte{}, pngHeader...), make([]byte, uploads.MaxImageBytes)...), uploads.ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uploads.SaveImage(ctx, mem, "blogs", bytes.NewReader(tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	res, err := mem.List(ctx, "", nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(res.Objects) != 0 {
		t.Errorf("rejected uploads were stored: %d objects", len(res.Objects))
	}
}

func TestRemove(t *testing.T) {
	mem := storage.NewMemory(storage.MemoryConfig{})
	ctx := context.Background()

	img, err := uploads.SaveImage(ctx, mem, "blogs", bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	if err := uploads.Remove(ctx, mem, img.Path); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if ok, _ := mem.Exists(ctx, img.Path); ok {
		t.Error("image still present after Remove")
	}
	if err := uploads.Remove(ctx, mem, img.Path); err != nil {
		t.Errorf("second Remove should be a no-op, got %v", err)
	}
}

func TestOpen_Local(t *testing.T) {
	dir := t.TempDir()
	s, err := uploads.Open(context.Background(), uploads.Config{Type: uploads.TypeLocal, LocalPath: dir, LocalURL: "/uploads/"})
	if err != nil {
		t.Fatalf("Open local: %v", err)
	}
	if s.Backend() != "local" {
		t.Errorf("backend = %q", s.Backend())
	}

	img, err := uploads.SaveImage(context.Background(), s, "blogs", bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	if img.URL != "/uploads/"+img.Path {
		t.Errorf("url = %q", img.URL)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(img.Path))); err != nil {
		t.Errorf("file missing on disk: %v", err)
	}
}

func TestOpen_S3(t *testing.T) {
	s, err := uploads.Open(context.Background(), uploads.Config{
		Type:        uploads.TypeS3,
		S3Region:    "eu-west-1",
		S3Bucket:    "koko-media",
		S3Prefix:    "dashboard/",
		S3PublicURL: "https://media.bigkoko.com/",
	})
	if err != nil {
		t.Fatalf("Open s3: %v", err)
	}
	if s.Backend() != "s3" {
		t.Errorf("backend = %q", s.Backend())
	}
	if got := s.URL("blogs/a.png"); got != "https://media.bigkoko.com/dashboard/blogs/a.png" {
		t.Errorf("URL = %q", got)
	}
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()
	if _, err := uploads.Open(ctx, uploads.Config{Type: "ftp"}); err == nil {
		t.Error("expected error for unknown type")
	}
	if _, err := uploads.Open(ctx, uploads.Config{Type: uploads.TypeS3}); !errors.Is(err, storage.ErrInvalidConfig) {
		t.Errorf("s3 without bucket: got %v", err)
	}
	if _, err := uploads.Open(ctx, uploads.Config{Type: uploads.TypeLocal}); !errors.Is(err, storage.ErrInvalidConfig) {
		t.Errorf("local without path: got %v", err)
	}
}
