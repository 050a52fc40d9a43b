package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chai2010/webp"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// fileHeader builds a real *multipart.FileHeader by parsing a one-part form.
func fileHeader(t *testing.T, name, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="photo"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	_, _ = part.Write(data)
	_ = mw.Close()

	form, err := multipart.NewReader(body, mw.Boundary()).ReadForm(10 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	return form.File["photo"][0]
}

func TestLocalStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir, "http://assets.test/storage/")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()
	if err := s.Put(ctx, "admins/a.webp", []byte("x"), "image/webp"); err != nil {
		t.Fatalf("put: %v", err)
	}
	url := s.URL("admins/a.webp")
	if url != "http://assets.test/storage/admins/a.webp" {
		t.Fatalf("unexpected url %s", url)
	}
	key, ok := s.PathFromURL(url)
	if !ok || key != "admins/a.webp" {
		t.Fatalf("unexpected key %q %v", key, ok)
	}
	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "admins", "a.webp")); !os.IsNotExist(err) {
		t.Fatalf("expected file to be removed, stat err=%v", err)
	}
	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("deleting a missing file should be a no-op: %v", err)
	}
}

func TestLocalStoreKeepsKeysInsideRoot(t *testing.T) {
	dir := t.TempDir()
	s, _ := NewLocalStore(dir, "http://assets.test")
	if err := s.Put(context.Background(), "../../escape.txt", []byte("x"), "text/plain"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.txt")); err != nil {
		t.Fatalf("expected key to be rooted inside the store: %v", err)
	}
}

func TestProcessImageShrinksToMaxWidth(t *testing.T) {
	out, err := ProcessImage(pngBytes(t, 1200, 300), ImageOptions{MaxWidth: 400, Quality: 70})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 100 {
		t.Fatalf("unexpected output %dx%d", cfg.Width, cfg.Height)
	}
}

func TestSavePhoto(t *testing.T) {
	s, _ := NewLocalStore(t.TempDir(), "http://assets.test")
	url, err := SavePhoto(context.Background(), s, "teachers", fileHeader(t, "me.png", "image/png", pngBytes(t, 20, 20)), ImageOptions{})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(url, "http://assets.test/teachers/") || !strings.HasSuffix(url, ".webp") {
		t.Fatalf("unexpected url %s", url)
	}

	if _, err := SavePhoto(context.Background(), s, "teachers", fileHeader(t, "cv.pdf", "application/pdf", []byte("%PDF")), ImageOptions{}); err == nil {
		t.Fatalf("expected non-image upload to be rejected")
	}
}
