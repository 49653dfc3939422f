package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessAvatarDownscalesLargeImages(t *testing.T) {
	out, err := ProcessAvatar(pngBytes(t, 1024, 640))
	require.NoError(t, err)
	require.NotEmpty(t, out)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 512, bounds.Dx())
	assert.LessOrEqual(t, bounds.Dy(), 512)
}

func TestProcessAvatarKeepsSmallImages(t *testing.T) {
	out, err := ProcessAvatar(pngBytes(t, 100, 80))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestProcessAvatarRejectsGarbage(t *testing.T) {
	_, err := ProcessAvatar([]byte("not an image"))
	assert.Error(t, err)
}
