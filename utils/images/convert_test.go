package images

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeImage(t *testing.T, name string, encode func(*bytes.Buffer, image.Image) error) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img.Set(1, 1, color.Black)
	buf := new(bytes.Buffer)
	if err := encode(buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func encodeGIF(buf *bytes.Buffer, img image.Image) error { return gif.Encode(buf, img, nil) }
func encodePNG(buf *bytes.Buffer, img image.Image) error { return png.Encode(buf, img) }

func TestNeedsConversion(t *testing.T) {
	svg := filepath.Join(t.TempDir(), "pic.SVG")
	if err := os.WriteFile(svg, []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"gif", writeImage(t, "pic.gif", encodeGIF), true},
		{"misnamed gif", writeImage(t, "pic.png", encodeGIF), true},
		{"png", writeImage(t, "pic.png", encodePNG), false},
		{"svg", svg, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NeedsConversion(tt.path)
			if err != nil {
				t.Fatalf("NeedsConversion() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("NeedsConversion() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := NeedsConversion(filepath.Join(t.TempDir(), "none.gif")); err == nil {
		t.Error("NeedsConversion() succeeded for missing file")
	}
}

func TestPNGName(t *testing.T) {
	for in, want := range map[string]string{
		"img/a.gif":     "img/a.png",
		"img/a.b.svg":   "img/a.b.png",
		"img/noext":     "img/noext.png",
		"/abs/pic.webp": "/abs/pic.png",
	} {
		if got := PNGName(in); got != want {
			t.Errorf("PNGName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToPNG(t *testing.T) {
	check := func(t *testing.T, path string, w, h int) {
		t.Helper()
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("rendition was not written: %v", err)
		}
		defer f.Close()
		cfg, err := png.DecodeConfig(f)
		if err != nil {
			t.Fatalf("rendition is not png: %v", err)
		}
		if cfg.Width != w || cfg.Height != h {
			t.Errorf("rendition size = %dx%d, want %dx%d", cfg.Width, cfg.Height, w, h)
		}
	}

	t.Run("gif", func(t *testing.T) {
		src := writeImage(t, "pic.gif", encodeGIF)
		dst := filepath.Join(t.TempDir(), "pic.png")
		if err := ToPNG(src, dst, 0); err != nil {
			t.Fatalf("ToPNG() error = %v", err)
		}
		check(t, dst, 8, 4)
	})

	t.Run("svg", func(t *testing.T) {
		src := filepath.Join(t.TempDir(), "pic.svg")
		svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 40 20"><rect width="40" height="20"/></svg>`
		if err := os.WriteFile(src, []byte(svg), 0644); err != nil {
			t.Fatal(err)
		}
		dst := filepath.Join(t.TempDir(), "pic.png")
		if err := ToPNG(src, dst, 80); err != nil {
			t.Fatalf("ToPNG() error = %v", err)
		}
		check(t, dst, 80, 40)
	})

	t.Run("garbage", func(t *testing.T) {
		src := filepath.Join(t.TempDir(), "pic.gif")
		if err := os.WriteFile(src, []byte("GIF89a broken"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := ToPNG(src, filepath.Join(t.TempDir(), "pic.png"), 0); err == nil {
			t.Error("ToPNG() succeeded for broken image")
		}
	})
}
