// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package screenshot creates images from the screen buffer of the TIA and
// writes them as PNG or JPEG files.
//
// The pixels of the VCS are wider than they are tall. Images are created with
// each pixel twice as wide as it is tall before any scaling is applied.
package screenshot

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/jetsetilly/freya2600/logger"
)

// PixelWidth is the width of each VCS pixel in the image before scaling.
const PixelWidth = 2

// Filter is the method used to scale the image.
type Filter int

// List of valid Filter values.
const (
	// NearestNeighbor keeps the edges of each pixel sharp
	NearestNeighbor Filter = iota

	// BiLinear smooths the edges of each pixel
	BiLinear
)

func (f Filter) interpolator() draw.Interpolator {
	if f == BiLinear {
		return draw.ApproxBiLinear
	}
	return draw.NearestNeighbor
}

// Image creates an RGBA image from a screen buffer of packed RGB values. The
// length of pixels must be width*height*3.
func Image(pixels []uint8, width int, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*3 {
		return nil, fmt.Errorf("screenshot: screen buffer of %d bytes does not match %dx%d", len(pixels), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < len(pixels); i, j = i+3, j+4 {
		img.Pix[j] = pixels[i]
		img.Pix[j+1] = pixels[i+1]
		img.Pix[j+2] = pixels[i+2]
		img.Pix[j+3] = 0xff
	}

	return img, nil
}

// Scale the image by the scale factor. The width is also multiplied by
// PixelWidth.
func Scale(src image.Image, scale int, filter Filter) *image.RGBA {
	scale = max(scale, 1)
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale*PixelWidth, b.Dy()*scale))
	filter.interpolator().Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Encoding is the image file format.
type Encoding int

// List of valid Encoding values.
const (
	PNG Encoding = iota
	JPEG
)

// EncodingFromFilename returns JPEG for filenames with the .jpg or .jpeg
// extension and PNG for everything else.
func EncodingFromFilename(filename string) Encoding {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return JPEG
	}
	return PNG
}

// Write the screen buffer to the io.Writer as an image.
func Write(output io.Writer, enc Encoding, pixels []uint8, width int, height int, scale int, filter Filter) error {
	img, err := Image(pixels, width, height)
	if err != nil {
		return err
	}

	scaled := Scale(img, scale, filter)

	switch enc {
	case JPEG:
		err = jpeg.Encode(output, scaled, &jpeg.Options{Quality: 100})
	default:
		err = png.Encode(output, scaled)
	}
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	return nil
}

// Save the screen buffer to the named file. The encoding is decided by the
// filename extension.
func Save(filename string, pixels []uint8, width int, height int, scale int, filter Filter) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("screenshot: %w", err)
		}
		if rerr == nil {
			logger.Logf(logger.Allow, "screenshot", "saved: %s", filename)
		}
	}()

	return Write(f, EncodingFromFilename(filename), pixels, width, height, scale, filter)
}
