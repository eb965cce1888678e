// Package ccsds122 implements the end-to-end encode/decode pipeline: level
// shift, edge padding, per-channel wavelet transform, bitplane and
// arithmetic coding, and container framing.
package ccsds122

import (
	"fmt"

	"github.com/cocosip/ccsds122/codec"
	"github.com/cocosip/ccsds122/internal/arith"
	"github.com/cocosip/ccsds122/internal/bitplane"
	"github.com/cocosip/ccsds122/internal/container"
	"github.com/cocosip/ccsds122/internal/wavelet"
)

// levelShift centers unsigned 8-bit samples on zero.
func levelShift(plane []byte) []int32 {
	out := make([]int32, len(plane))
	for i, v := range plane {
		out[i] = int32(v) - 128
	}
	return out
}

// unshift is the inverse of levelShift. It does not clamp: a correctly
// round-tripped plane never leaves [-128, 127], so each value maps back
// into [0, 255] directly.
func unshift(plane []int32) []byte {
	out := make([]byte, len(plane))
	for i, v := range plane {
		out[i] = byte(v + 128)
	}
	return out
}

// padDimensions rounds H and W up to the nearest multiple of 2^levels.
func padDimensions(h, w, levels int) (hp, wp int) {
	m := 1 << uint(levels)
	hp = (h + m - 1) / m * m
	wp = (w + m - 1) / m * m
	return hp, wp
}

// padPlane edge-replicates a (h, w) plane (row-major, no padding) into a
// (hp, wp) plane by repeating the last row/column, per spec.md §3.
func padPlane(plane []int32, h, w, hp, wp int) []int32 {
	out := make([]int32, hp*wp)
	for y := 0; y < hp; y++ {
		srcY := y
		if srcY >= h {
			srcY = h - 1
		}
		for x := 0; x < wp; x++ {
			srcX := x
			if srcX >= w {
				srcX = w - 1
			}
			out[y*wp+x] = plane[srcY*w+srcX]
		}
	}
	return out
}

// cropPlane is the inverse of padPlane: it takes the top-left (h, w)
// rectangle of a (hp, wp) plane.
func cropPlane(plane []int32, hp, wp, h, w int) []int32 {
	out := make([]int32, h*w)
	for y := 0; y < h; y++ {
		copy(out[y*w:(y+1)*w], plane[y*wp:y*wp+w])
	}
	return out
}

// validateLevels enforces spec.md §6: 2^N <= min(H, W).
func validateLevels(levels, h, w int) error {
	if levels < 1 {
		return codec.NewKindError(codec.KindParameterOutOfRange,
			fmt.Errorf("ccsds122: levels must be >= 1, got %d", levels))
	}
	min := h
	if w < min {
		min = w
	}
	if (1 << uint(levels)) > min {
		return codec.NewKindError(codec.KindParameterOutOfRange,
			fmt.Errorf("ccsds122: levels %d too large for %dx%d image", levels, h, w))
	}
	return nil
}

// Encode runs the full compress pipeline over C channel planes (each
// height*width bytes, row-major, unsigned 8-bit) and returns the complete
// container file bytes.
func Encode(height, width, channels, levels int, planes [][]byte) ([]byte, error) {
	if err := validateLevels(levels, height, width); err != nil {
		return nil, err
	}

	hp, wp := padDimensions(height, width, levels)

	coeffPlanes := make([][]int32, channels)
	for c, plane := range planes {
		shifted := levelShift(plane)
		padded := padPlane(shifted, height, width, hp, wp)
		wavelet.ForwardMultilevel(padded, wp, hp, wp, levels)
		coeffPlanes[c] = padded
	}

	values := bitplane.CollectAll(coeffPlanes, wp, hp, wp, levels)

	enc := arith.NewEncoder(bitplane.NumContexts)
	nbp := bitplane.Emit(enc, values)
	bitstream := enc.Flush()

	h := container.Header{
		H: uint16(height), W: uint16(width),
		C: uint8(channels), L: uint8(levels),
		Hp: uint16(hp), Wp: uint16(wp),
		Wavelet: container.WaveletInteger53,
		Nbp:     uint8(nbp),
	}

	return container.WriteFile(h, bitstream), nil
}

// Decode parses a complete container file and reconstructs the original
// per-channel byte planes.
func Decode(data []byte) (height, width, channels int, planes [][]byte, err error) {
	h, bitstream, err := container.ParseFile(data)
	if err != nil {
		return 0, 0, 0, nil, err
	}

	height, width = int(h.H), int(h.W)
	hp, wp := int(h.Hp), int(h.Wp)
	levels := int(h.L)
	channels = int(h.C)
	n := hp * wp

	dec := arith.NewDecoder(bitstream, bitplane.NumContexts)
	mag, sign := bitplane.Decode(dec, n*channels, int(h.Nbp))
	values := bitplane.JoinSignMagnitude(sign, mag)

	coeffPlanes := make([][]int32, channels)
	for c := range coeffPlanes {
		coeffPlanes[c] = make([]int32, n)
	}
	bitplane.ScatterAll(coeffPlanes, wp, hp, wp, levels, values)

	planes = make([][]byte, channels)
	for c, coeffs := range coeffPlanes {
		wavelet.InverseMultilevel(coeffs, wp, hp, wp, levels)
		cropped := cropPlane(coeffs, hp, wp, height, width)
		planes[c] = unshift(cropped)
	}

	return height, width, channels, planes, nil
}
