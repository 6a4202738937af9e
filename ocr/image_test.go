package ocr

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/tiff"
)

// testImage returns a white image with a black bar, encoded as PNG or TIFF.
func testImage(t *testing.T, kind string) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 100, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, color.White)
		}
	}
	for x := 10; x < 50; x++ {
		for y := 10; y < 30; y++ {
			img.Set(x, y, color.Black)
		}
	}

	var buf bytes.Buffer
	var err error
	if kind == "tif" {
		err = tiff.Encode(&buf, img, nil)
	} else {
		err = png.Encode(&buf, img)
	}
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestPrepare(t *testing.T) {
	pngData := testImage(t, "png")
	got, err := Prepare(pngData, "png")
	if err != nil {
		t.Fatalf("Prepare(png) error = %v", err)
	}
	if !bytes.Equal(got, pngData) {
		t.Error("Prepare(png) changed the data")
	}

	got, err = Prepare(testImage(t, "tif"), ".TIF")
	if err != nil {
		t.Fatalf("Prepare(tif) error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(got))
	if err != nil {
		t.Fatalf("Prepare(tif) did not return PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("bounds = %v, want 100x50", b)
	}
}

func TestPrepareUnsupported(t *testing.T) {
	if _, err := Prepare([]byte{0}, "jpx"); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("Prepare(jpx) error = %v, want ErrUnsupportedImage", err)
	}
	if _, err := Prepare([]byte("nope"), "tif"); err == nil {
		t.Error("Prepare(bad tif) expected error")
	}
}
