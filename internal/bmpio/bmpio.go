// Package bmpio is the codec's image collaborator: it reads an input BMP
// into per-channel byte planes and writes per-channel byte planes back out
// as a BMP, using golang.org/x/image/bmp for the container format itself.
package bmpio

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/bmp"

	"github.com/cocosip/ccsds122/codec"
)

// ErrUnsupportedChannels is returned when the decoded image isn't 1 (gray)
// or 3 (RGB) channels after normalization.
var ErrUnsupportedChannels = fmt.Errorf("bmpio: unsupported channel count")

// Image holds a decoded picture as C independent H*W row-major byte planes,
// one per channel, in the layout the wavelet/bitplane stages expect.
type Image struct {
	Height, Width int
	Channels      int
	Planes        [][]byte // len == Channels, each len == Height*Width
}

// Read decodes the BMP file at path into an Image. Grayscale BMPs (8-bit
// with an all-gray palette) become a single-channel Image; anything else is
// normalized to 3-channel RGB.
func Read(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, codec.NewKindError(codec.KindInputIO, fmt.Errorf("bmpio: open %s: %w", path, err))
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, codec.NewKindError(codec.KindInputIO, fmt.Errorf("bmpio: decode %s: %w", path, err))
	}

	return fromImage(img)
}

func fromImage(img image.Image) (*Image, error) {
	bounds := img.Bounds()
	height, width := bounds.Dy(), bounds.Dx()

	isGray := false
	switch m := img.(type) {
	case *image.Gray:
		isGray = true
	case *image.Paletted:
		// bmp.Encode stores *image.Gray as an 8-bit BMP with a gray palette,
		// which bmp.Decode returns as *image.Paletted.
		isGray = true
		for _, pc := range m.Palette {
			r, g, b, _ := pc.RGBA()
			if r != g || g != b {
				isGray = false
				break
			}
		}
	}
	if isGray {
		plane := make([]byte, height*width)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
				plane[y*width+x] = c.Y
			}
		}
		return &Image{Height: height, Width: width, Channels: 1, Planes: [][]byte{plane}}, nil
	}

	r := make([]byte, height*width)
	g := make([]byte, height*width)
	b := make([]byte, height*width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cr, cg, cb, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			idx := y*width + x
			r[idx] = byte(cr >> 8)
			g[idx] = byte(cg >> 8)
			b[idx] = byte(cb >> 8)
		}
	}
	return &Image{Height: height, Width: width, Channels: 3, Planes: [][]byte{r, g, b}}, nil
}

// Write encodes img as a BMP file at path.
func Write(path string, img *Image) error {
	var out image.Image
	switch img.Channels {
	case 1:
		gray := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
		copy(gray.Pix, img.Planes[0])
		out = gray
	case 3:
		rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
		r, g, b := img.Planes[0], img.Planes[1], img.Planes[2]
		for i := 0; i < img.Height*img.Width; i++ {
			rgba.Pix[i*4+0] = r[i]
			rgba.Pix[i*4+1] = g[i]
			rgba.Pix[i*4+2] = b[i]
			rgba.Pix[i*4+3] = 0xFF
		}
		out = rgba
	default:
		return codec.NewKindError(codec.KindInputIO, ErrUnsupportedChannels)
	}

	f, err := os.Create(path)
	if err != nil {
		return codec.NewKindError(codec.KindInputIO, fmt.Errorf("bmpio: create %s: %w", path, err))
	}
	defer f.Close()

	if err := bmp.Encode(f, out); err != nil {
		return codec.NewKindError(codec.KindInputIO, fmt.Errorf("bmpio: encode %s: %w", path, err))
	}
	return nil
}
