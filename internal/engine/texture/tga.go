// Package texture decodes image files into GPU-ready pixel buffers and keeps
// the tag-addressed registry of uploaded textures.
package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

// DecodeTGA decodes a true-color TGA file (24 or 32 bpp, raw or RLE).
// The returned image is oriented top-to-bottom regardless of the file's origin bit.
// It also reports the file's channel count: 3 for 24 bpp, 4 for 32 bpp.
func DecodeTGA(data []byte) (image.Image, int, error) {
	if len(data) < 18 {
		return nil, 0, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, 0, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, 0, fmt.Errorf("unsupported TGA type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, 0, fmt.Errorf("unsupported TGA bit depth %d", bpp)
	}
	if width == 0 || height == 0 {
		return nil, 0, fmt.Errorf("empty TGA image %dx%d", width, height)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, 0, fmt.Errorf("TGA data truncated")
	}

	r := &tgaReader{
		src:         data[offset:],
		img:         image.NewNRGBA(image.Rect(0, 0, width, height)),
		bpp:         bpp / 8,
		topToBottom: topToBottom,
	}

	var err error
	if imageType == TGATypeUncompressed {
		err = r.readRaw()
	} else {
		err = r.readRLE()
	}
	if err != nil {
		return nil, 0, err
	}
	return r.img, bpp / 8, nil
}

type tgaReader struct {
	src         []byte
	pos         int
	img         *image.NRGBA
	bpp         int
	topToBottom bool
	written     int
}

// pixel reads one BGR(A) pixel at the cursor.
func (r *tgaReader) pixel() (color.NRGBA, bool) {
	if r.pos+r.bpp > len(r.src) {
		return color.NRGBA{}, false
	}
	p := r.src[r.pos : r.pos+r.bpp]
	r.pos += r.bpp
	c := color.NRGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.bpp == 4 {
		c.A = p[3]
	}
	return c, true
}

// put stores the next pixel in file order, flipping rows for bottom-up files.
func (r *tgaReader) put(c color.NRGBA) {
	w := r.img.Rect.Dx()
	h := r.img.Rect.Dy()
	x := r.written % w
	y := r.written / w
	if !r.topToBottom {
		y = h - 1 - y
	}
	r.img.SetNRGBA(x, y, c)
	r.written++
}

func (r *tgaReader) total() int {
	return r.img.Rect.Dx() * r.img.Rect.Dy()
}

func (r *tgaReader) readRaw() error {
	if len(r.src) < r.total()*r.bpp {
		return fmt.Errorf("TGA pixel data truncated")
	}
	for r.written < r.total() {
		c, _ := r.pixel()
		r.put(c)
	}
	return nil
}

func (r *tgaReader) readRLE() error {
	for r.written < r.total() {
		if r.pos >= len(r.src) {
			return fmt.Errorf("TGA RLE data truncated at pixel %d", r.written)
		}
		packet := r.src[r.pos]
		r.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, ok := r.pixel()
			if !ok {
				return fmt.Errorf("TGA RLE packet truncated")
			}
			for i := 0; i < count && r.written < r.total(); i++ {
				r.put(c)
			}
			continue
		}

		for i := 0; i < count && r.written < r.total(); i++ {
			c, ok := r.pixel()
			if !ok {
				return fmt.Errorf("TGA raw packet truncated")
			}
			r.put(c)
		}
	}
	return nil
}
