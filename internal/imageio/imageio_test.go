package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNGFixture(t *testing.T, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.png")

	src := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	writePNGFixture(t, path, src)

	img, format, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if format != "png" {
		t.Errorf("format: got %q, want png", format)
	}
	b := img.Bounds()
	if b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", b.Dx(), b.Dy())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Error("expected error for corrupt file")
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	data := []byte{1, 2, 3, 4}

	if err := Write(path, data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("read back %v, want %v", got, data)
	}
}

func TestWriteBadPath(t *testing.T) {
	if err := Write(filepath.Join(t.TempDir(), "missing", "out.bin"), []byte{1}); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestHasAlpha(t *testing.T) {
	opaque := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 255
	}
	transparent := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 3; i < len(transparent.Pix); i += 4 {
		transparent.Pix[i] = 255
	}
	transparent.SetNRGBA(2, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 128})

	tests := []struct {
		name string
		img  image.Image
		want bool
	}{
		{"opaque nrgba", opaque, false},
		{"translucent nrgba", transparent, true},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio420), false},
		{"gray", image.NewGray(image.Rect(0, 0, 4, 4)), false},
		{"opaque rgba", opaqueRGBA(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAlpha(tt.img); got != tt.want {
				t.Errorf("HasAlpha = %v, want %v", got, tt.want)
			}
		})
	}
}

func opaqueRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}
