package bitplane

// Encode runs the significance/sign/refinement state machine over a
// coefficient vector and materializes its full (bit, context) symbol
// stream. It's the form used to test the symbol stream as its own
// artifact (testable properties 2 and 6); Emit below drives an arithmetic
// coder directly without building this slice.
//
// Ordering: the outer loop runs bit-planes b = nbp down to 0 (MSB first);
// the inner loop runs k ascending over values. Each coefficient starts
// Insignificant and transitions to Significant at most once, the bit-plane
// where its first 1 bit appears.
func Encode(values []int32) (symbols []Symbol, nbp int) {
	sign, mag := SplitSignMagnitude(values)
	nbp = NumBitPlanes(mag)

	sig := make([]bool, len(values))
	for b := nbp; b >= 0; b-- {
		for k, m := range mag {
			bit := byte((m >> uint(b)) & 1)
			if !sig[k] {
				symbols = append(symbols, Symbol{Bit: bit, Ctx: CtxSig})
				if bit == 1 {
					sig[k] = true
					var s byte
					if sign[k] {
						s = 1
					}
					symbols = append(symbols, Symbol{Bit: s, Ctx: CtxSign})
				}
			} else {
				symbols = append(symbols, Symbol{Bit: bit, Ctx: CtxRef})
			}
		}
	}
	return symbols, nbp
}

// Emit runs the same state machine as Encode but pushes each symbol
// straight into sink instead of returning a slice, avoiding an
// O(bitplanes * coefficients) allocation for the production encode path.
func Emit(sink BitSink, values []int32) (nbp int) {
	sign, mag := SplitSignMagnitude(values)
	nbp = NumBitPlanes(mag)

	sig := make([]bool, len(values))
	for b := nbp; b >= 0; b-- {
		for k, m := range mag {
			bit := int((m >> uint(b)) & 1)
			if !sig[k] {
				sink.EncodeBit(bit, CtxSig)
				if bit == 1 {
					sig[k] = true
					s := 0
					if sign[k] {
						s = 1
					}
					sink.EncodeBit(s, CtxSign)
				}
			} else {
				sink.EncodeBit(bit, CtxRef)
			}
		}
	}
	return nbp
}
