package texture

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "tex.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write png: %v", err)
	}
	return path
}

// twoRows builds a 1x2 image with a red top row and a blue bottom row.
func twoRows(alpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: alpha})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: alpha})
	return img
}

func TestDecodeFileRGBA(t *testing.T) {
	path := writePNG(t, twoRows(128))

	img, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}
	if img.Channels != 4 {
		t.Errorf("expected 4 channels, got %d", img.Channels)
	}
	if img.Width != 1 || img.Height != 2 {
		t.Errorf("expected 1x2, got %dx%d", img.Width, img.Height)
	}
	if len(img.Pixels) != 1*2*4 {
		t.Fatalf("expected 8 bytes, got %d", len(img.Pixels))
	}
	// Flipped: the blue bottom row comes first
	if img.Pixels[2] < 250 || img.Pixels[0] > 5 {
		t.Errorf("first row should be blue after flip, got %v", img.Pixels[:4])
	}
	if img.Pixels[3] < 126 || img.Pixels[3] > 130 {
		t.Errorf("alpha should stay straight (~128), got %d", img.Pixels[3])
	}
}

func TestDecodeFileOpaqueIsRGB(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 1, 2))
	rgba.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	rgba.SetRGBA(0, 1, color.RGBA{G: 255, A: 255})
	path := writePNG(t, rgba)

	img, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}
	if img.Channels != 3 {
		t.Fatalf("expected 3 channels for opaque PNG, got %d", img.Channels)
	}
	if len(img.Pixels) != 6 {
		t.Fatalf("expected tightly packed 6 bytes, got %d", len(img.Pixels))
	}
	if img.Pixels[1] != 255 || img.Pixels[3] != 255 {
		t.Errorf("expected green then red after flip, got %v", img.Pixels)
	}
}

func TestDecodeJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("jpeg encode: %v", err)
	}

	img, err := Decode(buf.Bytes(), ".jpg")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Channels != 3 {
		t.Errorf("expected 3 channels for JPEG, got %d", img.Channels)
	}
	if img.Width != 8 || img.Height != 8 {
		t.Errorf("expected 8x8, got %dx%d", img.Width, img.Height)
	}
}

func TestDecodeBMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatalf("bmp encode: %v", err)
	}

	img, err := Decode(buf.Bytes(), ".bmp")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Channels != 3 && img.Channels != 4 {
		t.Errorf("expected RGB or RGBA, got %d channels", img.Channels)
	}
}

func TestDecodeGrayUnsupported(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	path := writePNG(t, gray)

	_, err := DecodeFile(path)
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("expected ErrUnsupportedChannels, got %v", err)
	}
}

// grayAlphaPNG builds a 1x1 8-bit gray+alpha PNG. The standard encoder never
// writes this color type.
func grayAlphaPNG(t *testing.T) []byte {
	t.Helper()
	var out bytes.Buffer
	out.WriteString("\x89PNG\r\n\x1a\n")
	chunk := func(typ string, body []byte) {
		var n [4]byte
		binary.BigEndian.PutUint32(n[:], uint32(len(body)))
		out.Write(n[:])
		out.WriteString(typ)
		out.Write(body)
		crc := crc32.NewIEEE()
		crc.Write([]byte(typ))
		crc.Write(body)
		binary.BigEndian.PutUint32(n[:], crc.Sum32())
		out.Write(n[:])
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], 1)
	binary.BigEndian.PutUint32(ihdr[4:], 1)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 4 // gray + alpha
	chunk("IHDR", ihdr)

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	if _, err := zw.Write([]byte{0, 200, 128}); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}
	chunk("IDAT", idat.Bytes())
	chunk("IEND", nil)
	return out.Bytes()
}

func TestDecodeGrayAlphaUnsupported(t *testing.T) {
	data := grayAlphaPNG(t)

	// The standard decoder hands these back as RGBA
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("fixture does not decode: %v", err)
	}
	if _, ok := img.(*image.NRGBA); !ok {
		t.Fatalf("fixture decoded as %T, want *image.NRGBA", img)
	}

	_, err = Decode(data, ".png")
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("expected ErrUnsupportedChannels, got %v", err)
	}
}

func TestDecodeNotAnImage(t *testing.T) {
	_, err := Decode([]byte("just some text, not pixels"), ".jpg")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDecodeFileMissing(t *testing.T) {
	if _, err := DecodeFile(filepath.Join(t.TempDir(), "nope.jpg")); err == nil {
		t.Error("expected error for missing file")
	}
}
