package scenestage

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is decoded pixel data ready for GPU upload. Pix is always RGBA8
// (4 bytes per pixel, row-major); Channels reports what the source file
// actually carried so callers can reject formats they do not support.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// ImageDecoder turns an image file into upload-ready pixel data.
type ImageDecoder interface {
	Decode(path string) (Image, error)
}

// FileDecoder decodes PNG, JPEG, BMP, TIFF and WebP files from disk.
type FileDecoder struct {
	// FlipVertically reorders rows bottom-up to match the GL texture
	// origin. Scene texture loading wants this on.
	FlipVertically bool
}

func (d FileDecoder) Decode(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("open image %q: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return Image{}, fmt.Errorf("decode image %q: %w", path, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		dy := y
		if d.FlipVertically {
			dy = h - 1 - y
		}
		for x := 0; x < w; x++ {
			rgba.Set(x, dy, src.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	return Image{
		Width:    w,
		Height:   h,
		Channels: channelCount(src),
		Pix:      rgba.Pix,
	}, nil
}

// channelCount reports the channel count of the source image as decoded,
// before RGBA8 normalization.
func channelCount(src image.Image) int {
	switch img := src.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Alpha, *image.Alpha16:
		return 2
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Paletted:
		for _, c := range img.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	default:
		return 4
	}
}
