package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func testJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{200, 120, 40, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func testPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{40, 120, 200, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestProcessPhotoJPEG(t *testing.T) {
	data, err := ProcessPhoto(bytes.NewReader(testJPEG(100, 100)))
	if err != nil {
		t.Fatalf("ProcessPhoto JPEG: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty output")
	}
}

func TestProcessPhotoPNGBecomesJPEG(t *testing.T) {
	data, err := ProcessPhoto(bytes.NewReader(testPNG(100, 100)))
	if err != nil {
		t.Fatalf("ProcessPhoto PNG: %v", err)
	}

	_, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("expected jpeg output, got %s", format)
	}
}

func TestProcessPhotoDownscalesKeepingAspect(t *testing.T) {
	data, err := ProcessPhoto(bytes.NewReader(testJPEG(1600, 1200)))
	if err != nil {
		t.Fatalf("ProcessPhoto large photo: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != MaxDimension || bounds.Dy() != MaxDimension*3/4 {
		t.Errorf("expected %dx%d, got %dx%d", MaxDimension, MaxDimension*3/4, bounds.Dx(), bounds.Dy())
	}
}

func TestProcessPhotoSmallNotUpscaled(t *testing.T) {
	data, err := ProcessPhoto(bytes.NewReader(testJPEG(60, 40)))
	if err != nil {
		t.Fatalf("ProcessPhoto small photo: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds().Dx() != 60 || img.Bounds().Dy() != 40 {
		t.Errorf("small photo should not be resized: got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestProcessPhotoRejectsNonImages(t *testing.T) {
	if _, err := ProcessPhoto(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected error for non-image data")
	}
	if _, err := ProcessPhoto(bytes.NewReader([]byte("GIF89a..."))); err == nil {
		t.Error("expected error for GIF data")
	}
}
