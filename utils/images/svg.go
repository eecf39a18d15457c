package images

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// defaultSVGSize is used when viewBox has no size.
const defaultSVGSize = 1024

// maxRasterDim limits either side of rasterized image.
var maxRasterDim = 8192

// RasterizeSVG renders SVG on white background. When width is positive image
// is scaled to it keeping aspect ratio, otherwise viewBox size is used.
func RasterizeSVG(data []byte, width int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	iw, ih := int(math.Ceil(icon.ViewBox.W)), int(math.Ceil(icon.ViewBox.H))
	if iw <= 0 {
		iw = defaultSVGSize
	}
	if ih <= 0 {
		ih = defaultSVGSize
	}

	w, h := iw, ih
	if width > 0 {
		w = width
		h = int(math.Round(float64(width) * float64(ih) / float64(iw)))
	}
	if w > maxRasterDim || h > maxRasterDim {
		s := min(float64(maxRasterDim)/float64(w), float64(maxRasterDim)/float64(h))
		w, h = int(math.Round(float64(w)*s)), int(math.Round(float64(h)*s))
	}
	w, h = max(w, 1), max(h, 1)

	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return dst, nil
}
