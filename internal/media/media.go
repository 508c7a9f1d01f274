// Package media turns arbitrary uploaded raster images into bounded-size
// JPEGs ready for the blob store.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	maxWidth    = 800
	jpegQuality = 50
)

// ContentType and Ext describe the fixed target encoding of every
// transcoded image.
const (
	ContentType = "image/jpeg"
	Ext         = ".jpg"
)

var ErrUnsupportedMedia = errors.New("unsupported media")

// Transcode decodes raw, fits it inside an 800px-wide box without cropping
// or upscaling, and re-encodes it as JPEG at quality 50. Pure function, no
// I/O. Returns ErrUnsupportedMedia when raw is not a decodable image.
func Transcode(raw []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMedia, err)
	}

	bounds := src.Bounds()
	if w := bounds.Dx(); w > maxWidth {
		h := bounds.Dy() * maxWidth / w
		if h < 1 {
			h = 1
		}
		scaled := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, bounds, draw.Src, nil)
		src = scaled
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return out.Bytes(), nil
}
