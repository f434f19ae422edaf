package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

var (
	// ErrUnsupportedFormat is returned for files that are not a decodable image.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrUnsupportedChannels is returned for images that are neither RGB nor RGBA.
	ErrUnsupportedChannels = errors.New("unsupported channel count")
)

// Image is decoded pixel data ready for upload: tightly packed rows,
// Channels bytes per pixel, first row at the bottom of the picture.
type Image struct {
	Pixels   []byte
	Width    int
	Height   int
	Channels int
}

// Decoder turns a file path into an uploadable Image.
type Decoder func(path string) (*Image, error)

// DecodeFile reads and decodes an image file, flipped vertically so the first
// row is the bottom one (GL texture coordinate convention).
// Only 3-channel and 4-channel images are accepted.
func DecodeFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, filepath.Ext(path))
}

// Decode decodes image bytes. ext is the source file extension and is only
// consulted for TGA, which has no magic number.
func Decode(data []byte, ext string) (*Image, error) {
	var (
		img      image.Image
		channels int
		err      error
	)

	if strings.EqualFold(ext, ".tga") {
		img, channels, err = DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
	} else {
		if !filetype.IsImage(data) {
			return nil, ErrUnsupportedFormat
		}
		if n, ok := pngGrayChannels(data); ok {
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, n)
		}
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		channels = channelCount(img)
	}

	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	flipped := transform.FlipV(img)
	return &Image{
		Pixels:   pack(flipped, channels),
		Width:    flipped.Bounds().Dx(),
		Height:   flipped.Bounds().Dy(),
		Channels: channels,
	}, nil
}

// channelCount reports how many channels the source file carries.
func channelCount(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	case *image.RGBA:
		// Decoders hand back RGBA for files without an alpha channel
		if m.Opaque() {
			return 3
		}
		return 4
	case *image.RGBA64:
		if m.Opaque() {
			return 3
		}
		return 4
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA:
		return 4
	}

	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.YCbCrModel, color.CMYKModel:
		return 3
	}
	return 4
}

// pngGrayChannels reports the channel count of grayscale PNGs, which the Go
// decoder widens to RGBA when they carry alpha.
func pngGrayChannels(data []byte) (int, bool) {
	if kind, _ := filetype.Match(data); kind.Extension != "png" {
		return 0, false
	}
	// Signature (8), chunk length (4), "IHDR" (4), width, height, bit depth
	if len(data) < 26 || string(data[12:16]) != "IHDR" {
		return 0, false
	}
	switch data[25] {
	case 0:
		return 1, true
	case 4:
		return 2, true
	}
	return 0, false
}

// pack converts to straight alpha and strips the alpha channel for RGB images.
func pack(img image.Image, channels int) []byte {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	if channels == 4 {
		return nrgba.Pix
	}

	out := make([]byte, 0, b.Dx()*b.Dy()*3)
	for i := 0; i < len(nrgba.Pix); i += 4 {
		out = append(out, nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2])
	}
	return out
}
