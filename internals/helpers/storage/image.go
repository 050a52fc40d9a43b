package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"schooladmin_backend/internals/constants"
)

type ImageOptions struct {
	MaxWidth int
	Quality  int
}

func (o ImageOptions) withDefaults() ImageOptions {
	if o.MaxWidth <= 0 {
		o.MaxWidth = 800
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = 80
	}
	return o
}

// ProcessImage decodes jpeg/png/gif/webp, shrinks it to MaxWidth (never enlarges) and encodes WebP.
func ProcessImage(data []byte, opt ImageOptions) ([]byte, error) {
	opt = opt.withDefaults()
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if img.Bounds().Dx() > opt.MaxWidth {
		img = imaging.Resize(img, opt.MaxWidth, 0, imaging.Lanczos)
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(opt.Quality)}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// SavePhoto validates an uploaded image, converts it and stores it under folder.
// It returns the public URL.
func SavePhoto(ctx context.Context, store Store, folder string, fh *multipart.FileHeader, opt ImageOptions) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "photo is missing")
	}
	if fh.Size > constants.MaxPhotoSize {
		return "", fiber.NewError(fiber.StatusUnprocessableEntity, "photo may not be greater than 2048 kilobytes")
	}
	if !constants.IsImageExt(fh.Filename) || (fh.Header.Get("Content-Type") != "" && !constants.IsImageMime(fh.Header.Get("Content-Type"))) {
		return "", fiber.NewError(fiber.StatusUnprocessableEntity, "photo must be an image (jpg, png, webp, gif)")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()
	raw, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	out, err := ProcessImage(raw, opt)
	if err != nil {
		return "", fiber.NewError(fiber.StatusUnprocessableEntity, "photo must be a valid image")
	}

	key := path.Join(folder, uuid.NewString()+".webp")
	if err := store.Put(ctx, key, out, "image/webp"); err != nil {
		return "", err
	}
	return store.URL(key), nil
}

// DeleteByURL removes an asset previously returned by SavePhoto. Failures are logged only.
func DeleteByURL(ctx context.Context, store Store, url string) {
	if store == nil || url == "" {
		return
	}
	key, ok := store.PathFromURL(url)
	if !ok {
		log.Warn().Str("url", url).Msg("storage: url does not belong to this store")
		return
	}
	if err := store.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("storage: delete failed")
	}
}
