package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/fbarrios/desertscene/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Decode reads an image file and returns it as RGBA, flipped to OpenGL's
// bottom-to-top row order. TGA files go through the hand-rolled decoder;
// everything else goes through the stdlib image registry (PNG, JPEG).
func Decode(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture %s: %w", path, err)
	}

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}

	return FlipVertical(ImageToRGBA(img)), nil
}

// Load decodes an image file and uploads it as a GL texture with repeat
// wrapping, linear filtering and generated mipmaps. Returns the texture name.
func Load(path string) (uint32, error) {
	rgba, err := Decode(path)
	if err != nil {
		return 0, err
	}
	return Upload(rgba, path), nil
}

// Upload transfers an RGBA image to the GPU. The name argument is only
// used for logging.
func Upload(rgba *image.RGBA, name string) uint32 {
	bounds := rgba.Bounds()
	width := int32(bounds.Dx())
	height := int32(bounds.Dy())

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		width,
		height,
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	logger.Debug("texture uploaded",
		zap.String("texture", name),
		zap.Uint32("id", tex),
		zap.Int32("width", width),
		zap.Int32("height", height),
	)
	return tex
}
