package ccsds122

import (
	"fmt"

	"github.com/cocosip/ccsds122/codec"
)

const (
	uid  = "ccsds122.lossless.53"
	name = "CCSDS 122.0-B-2 (integer 5/3, lossless subset)"
)

// DefaultLevels is used when Options.Levels is left at its zero value.
const DefaultLevels = 1

// Options configures the number of DWT levels; everything else about the
// format (wavelet kind, context model, CRC32 variant) is fixed by spec.
type Options struct {
	Levels int
}

// Validate checks only what's knowable without the image dimensions; the
// 2^N <= min(H, W) bound is checked against the actual image in Encode.
func (o Options) Validate() error {
	if o.Levels < 0 {
		return codec.NewKindError(codec.KindParameterOutOfRange,
			fmt.Errorf("ccsds122: levels must be >= 0, got %d", o.Levels))
	}
	return nil
}

// Codec adapts the ccsds122 pipeline to the shared codec.Codec interface.
type Codec struct{}

// New returns a Codec instance ready to register.
func New() *Codec { return &Codec{} }

func (c *Codec) UID() string  { return uid }
func (c *Codec) Name() string { return name }

// Encode implements codec.Codec. params.PixelData is interleaved
// (H*W*Components) bytes; it's de-interleaved into per-channel planes
// before running the pipeline.
func (c *Codec) Encode(params codec.EncodeParams) ([]byte, error) {
	levels := DefaultLevels
	if opts, ok := params.Options.(Options); ok && opts.Levels > 0 {
		levels = opts.Levels
	}

	planes := deinterleave(params.PixelData, params.Height, params.Width, params.Components)
	return Encode(params.Height, params.Width, params.Components, levels, planes)
}

// Decode implements codec.Codec, re-interleaving the reconstructed
// per-channel planes into a single PixelData buffer.
func (c *Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	height, width, channels, planes, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return &codec.DecodeResult{
		PixelData:  interleave(planes, height, width, channels),
		Width:      width,
		Height:     height,
		Components: channels,
		BitDepth:   8,
	}, nil
}

func deinterleave(pixels []byte, height, width, channels int) [][]byte {
	n := height * width
	planes := make([][]byte, channels)
	for c := range planes {
		planes[c] = make([]byte, n)
	}
	for i := 0; i < n; i++ {
		for c := 0; c < channels; c++ {
			planes[c][i] = pixels[i*channels+c]
		}
	}
	return planes
}

func interleave(planes [][]byte, height, width, channels int) []byte {
	n := height * width
	out := make([]byte, n*channels)
	for i := 0; i < n; i++ {
		for c := 0; c < channels; c++ {
			out[i*channels+c] = planes[c][i]
		}
	}
	return out
}
