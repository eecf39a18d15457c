// Package images turns pictures pdflatex is unable to include into PNG.
package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// convertible lists detected types which could be decoded and are not
// accepted by pdflatex.
var convertible = map[string]bool{
	"gif":  true,
	"bmp":  true,
	"tif":  true,
	"webp": true,
}

func isSVG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

// NeedsConversion reports whether image file should be replaced by its PNG
// rendition. SVG is recognized by extension, everything else by content.
func NeedsConversion(path string) (bool, error) {
	if isSVG(path) {
		return true, nil
	}
	kind, err := filetype.MatchFile(path)
	if err != nil {
		return false, err
	}
	return convertible[kind.Extension], nil
}

// PNGName returns name of PNG rendition for the image.
func PNGName(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
}

// ToPNG decodes image at src and saves it as PNG to dst. Width is only used
// for SVG, see RasterizeSVG.
func ToPNG(src, dst string, width int) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	var img image.Image
	if isSVG(src) {
		img, err = RasterizeSVG(data, width)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return fmt.Errorf("unable to decode %s: %w", src, err)
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return fmt.Errorf("unable to encode %s: %w", dst, err)
	}
	return os.WriteFile(dst, buf.Bytes(), 0644)
}
