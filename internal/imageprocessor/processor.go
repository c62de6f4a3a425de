package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DefaultMaxPixels bounds the decoded size of a photo (about 160 MB as RGBA).
const DefaultMaxPixels = 40_000_000

var (
	// ErrNotAnImage is returned when the data cannot be decoded as an image.
	ErrNotAnImage = errors.New("not a decodable image")
	// ErrTooManyPixels is returned when the header announces more pixels
	// than the processor is allowed to decode.
	ErrTooManyPixels = errors.New("image has too many pixels")
)

// Processor downsizes uploaded photos.
type Processor struct {
	quality   int // JPEG quality (1-100)
	maxPixels int64
}

// NewProcessor returns a processor encoding JPEGs at quality. maxPixels <= 0
// means DefaultMaxPixels.
func NewProcessor(quality, maxPixels int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &Processor{quality: quality, maxPixels: int64(maxPixels)}
}

// Fit makes sure the image in data fits in a maxDim x maxDim box. Images
// already inside the box, and formats that cannot be re-encoded, are
// returned unchanged. The bool reports whether data was resized.
// Only the header is read before the pixel limit is checked.
func (p *Processor) Fit(data []byte, maxDim int) ([]byte, bool, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > p.maxPixels {
		return nil, false, fmt.Errorf("%w: %dx%d", ErrTooManyPixels, cfg.Width, cfg.Height)
	}
	if maxDim <= 0 || (cfg.Width <= maxDim && cfg.Height <= maxDim) {
		return data, false, nil
	}
	if format != "jpeg" && format != "png" {
		return data, false, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	resized := p.resize(img, maxDim, maxDim)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality})
	case "png":
		err = png.Encode(&buf, resized)
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return buf.Bytes(), true, nil
}

// resize scales img into maxWidth x maxHeight keeping its aspect ratio.
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
