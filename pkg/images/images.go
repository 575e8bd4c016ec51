// Package images persists uploaded pictures, downscaled and re-encoded as
// JPEG under a random filename.
package images

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/png"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const jpegQuality = 85

// ErrUnsupportedImageType is returned for uploads whose filename extension
// is not an accepted image format.
var ErrUnsupportedImageType = errors.New("unsupported image type")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// Save decodes the uploaded file, scales it down to fit within maxW x maxH
// while keeping its aspect ratio, and writes it as a JPEG into
// baseDir/folder. It returns the generated filename. Uploads are rejected
// up front unless their extension is an accepted image format.
func Save(file *multipart.FileHeader, baseDir, folder string, maxW, maxH int) (string, error) {
	if !allowedExtensions[strings.ToLower(filepath.Ext(file.Filename))] {
		return "", ErrUnsupportedImageType
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	img = thumbnail(img, maxW, maxH)

	dir := filepath.Join(baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := strings.ReplaceAll(uuid.New().String(), "-", "") + ".jpg"
	out, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", err
	}
	return filename, nil
}

// thumbnail scales img down to fit within maxW x maxH. Images already small
// enough are returned unchanged.
func thumbnail(img image.Image, maxW, maxH int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxW && h <= maxH {
		return img
	}

	ratioW := float64(maxW) / float64(w)
	ratioH := float64(maxH) / float64(h)
	ratio := ratioW
	if ratioH < ratio {
		ratio = ratioH
	}

	dstW := int(float64(w) * ratio)
	dstH := int(float64(h) * ratio)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
