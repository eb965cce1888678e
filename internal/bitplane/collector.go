package bitplane

import "github.com/cocosip/ccsds122/internal/wavelet"

// CollectPlane gathers one channel's CoefficientPlane into the flat,
// row-major-within-subband vector V described in the data model: the LL
// subband at the coarsest level first, then LH/HL/HH from level L down to
// 1, per wavelet.ScanOrder.
func CollectPlane(plane []int32, stride, height, width, levels int) []int32 {
	sbs := wavelet.ScanOrder(height, width, levels)
	out := make([]int32, 0, height*width)
	for _, sb := range sbs {
		for r := 0; r < sb.Rows; r++ {
			rowStart := (sb.Row0+r)*stride + sb.Col0
			out = append(out, plane[rowStart:rowStart+sb.Cols]...)
		}
	}
	return out
}

// ScatterPlane is the inverse of CollectPlane: it writes values back into
// dst's subband rectangles in the same scan order they were collected in.
func ScatterPlane(dst []int32, stride, height, width, levels int, values []int32) {
	sbs := wavelet.ScanOrder(height, width, levels)
	pos := 0
	for _, sb := range sbs {
		for r := 0; r < sb.Rows; r++ {
			rowStart := (sb.Row0+r)*stride + sb.Col0
			copy(dst[rowStart:rowStart+sb.Cols], values[pos:pos+sb.Cols])
			pos += sb.Cols
		}
	}
}

// CollectAll concatenates CollectPlane's output for each channel, in channel
// order, forming the global vector V_all the bitplane coder scans.
func CollectAll(planes [][]int32, stride, height, width, levels int) []int32 {
	all := make([]int32, 0, len(planes)*height*width)
	for _, p := range planes {
		all = append(all, CollectPlane(p, stride, height, width, levels)...)
	}
	return all
}

// ScatterAll is the inverse of CollectAll.
func ScatterAll(planes [][]int32, stride, height, width, levels int, values []int32) {
	per := height * width
	for i, p := range planes {
		ScatterPlane(p, stride, height, width, levels, values[i*per:(i+1)*per])
	}
}
