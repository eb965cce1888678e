// Package container implements the on-disk format: a fixed-layout global
// header followed by length-prefixed packets that concatenate to the
// arithmetic bitstream.
package container

// WaveletInteger53 is the only accepted value of the header's wavelet field.
const WaveletInteger53 = 1

// Magic is the fixed 4-byte container identifier.
const Magic = "C122"

// HeaderSize is the fixed byte length of the global header, fields plus CRC.
const HeaderSize = 20

// MaxPayload is the largest payload a single packet may carry; the final
// packet in a stream may be shorter.
const MaxPayload = 65536

// Header is the container's global header (spec.md §4.4, with the nbp field
// inserted after wavelet and before crc32 per spec.md §9 decision (a)).
type Header struct {
	H, W    uint16
	C       uint8
	L       uint8
	Hp, Wp  uint16
	Wavelet uint8
	Nbp     uint8
	CRC32   uint32
}
