package images_test

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inkwell-app/inkwell/pkg/images"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadedFile builds a *multipart.FileHeader the way echo's FormFile would
// hand one to a handler.
func uploadedFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestSaveRejectsUnsupportedExtension(t *testing.T) {
	file := uploadedFile(t, "notes.txt", []byte("not an image"))

	_, err := images.Save(file, t.TempDir(), "covers", 100, 100)
	require.ErrorIs(t, err, images.ErrUnsupportedImageType)
}

func TestSaveRejectsImagePayloadWithBadExtension(t *testing.T) {
	// A real PNG behind a disallowed extension is still refused.
	file := uploadedFile(t, "picture.svg", pngBytes(t, 10, 10))

	_, err := images.Save(file, t.TempDir(), "covers", 100, 100)
	require.ErrorIs(t, err, images.ErrUnsupportedImageType)
}

func TestSaveRejectsUndecodableContent(t *testing.T) {
	file := uploadedFile(t, "broken.png", []byte("garbage"))

	_, err := images.Save(file, t.TempDir(), "covers", 100, 100)
	assert.Error(t, err)
}

func TestSaveDownscalesAndWritesJpeg(t *testing.T) {
	dir := t.TempDir()
	file := uploadedFile(t, "pic.png", pngBytes(t, 64, 32))

	filename, err := images.Save(file, dir, "covers", 16, 16)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".jpg"))

	out, err := os.Open(filepath.Join(dir, "covers", filename))
	require.NoError(t, err)
	defer out.Close()

	img, err := jpeg.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestSaveKeepsSmallImagesUnscaled(t *testing.T) {
	dir := t.TempDir()
	file := uploadedFile(t, "tiny.png", pngBytes(t, 12, 8))

	filename, err := images.Save(file, dir, "profiles", 300, 300)
	require.NoError(t, err)

	out, err := os.Open(filepath.Join(dir, "profiles", filename))
	require.NoError(t, err)
	defer out.Close()

	img, err := jpeg.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}
