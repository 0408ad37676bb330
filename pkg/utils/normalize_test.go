package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeToJPG_EncodesJPEG(t *testing.T) {
	out, err := NormalizeToJPG(encodePNG(t, 10, 6), 0, 85)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
}

func TestNormalizeToJPG_ScalesDownWideImages(t *testing.T) {
	out, err := NormalizeToJPG(encodePNG(t, 100, 50), 40, 85)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestNormalizeToJPG_KeepsSmallImages(t *testing.T) {
	out, err := NormalizeToJPG(encodePNG(t, 20, 20), 512, 85)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
}

func TestNormalizeToJPG_RejectsGarbage(t *testing.T) {
	_, err := NormalizeToJPG([]byte("definitely not an image"), 512, 85)
	assert.Error(t, err)

	_, err = NormalizeToJPG(nil, 512, 85)
	assert.Error(t, err)
}

func TestReadAllLimit(t *testing.T) {
	data, err := ReadAllLimit(strings.NewReader("hello"), 10)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	_, err = ReadAllLimit(strings.NewReader("hello"), 4)
	assert.Error(t, err)
}
