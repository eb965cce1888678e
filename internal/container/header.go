package container

import (
	"encoding/binary"
	"fmt"

	"github.com/cocosip/ccsds122/codec"
)

// ErrBadMagic is returned when the leading 4 bytes aren't "C122".
var ErrBadMagic = fmt.Errorf("container: bad magic")

// ErrBadWavelet is returned when the wavelet field isn't WaveletInteger53.
var ErrBadWavelet = fmt.Errorf("container: unknown wavelet code")

// ErrBadChannelCount is returned when the channel field isn't 1 or 3.
var ErrBadChannelCount = fmt.Errorf("container: unsupported channel count")

// ErrTruncatedHeader is returned when fewer than HeaderSize bytes are available.
var ErrTruncatedHeader = fmt.Errorf("container: truncated header")

// MarshalHeader serializes h into the fixed big-endian layout described in
// spec.md §4.4.
func MarshalHeader(h Header) []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], Magic)
	binary.BigEndian.PutUint16(buf[4:6], h.H)
	binary.BigEndian.PutUint16(buf[6:8], h.W)
	buf[8] = h.C
	buf[9] = h.L
	binary.BigEndian.PutUint16(buf[10:12], h.Hp)
	binary.BigEndian.PutUint16(buf[12:14], h.Wp)
	buf[14] = h.Wavelet
	buf[15] = h.Nbp
	binary.BigEndian.PutUint32(buf[16:20], h.CRC32)
	return buf
}

// UnmarshalHeader parses the fixed global header from the front of data.
// It validates the magic, the wavelet code, and the channel count,
// returning a FormatReject KindError when any of them is wrong.
func UnmarshalHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, codec.NewKindError(codec.KindFormatReject, ErrTruncatedHeader)
	}
	if string(data[0:4]) != Magic {
		return Header{}, codec.NewKindError(codec.KindFormatReject, ErrBadMagic)
	}

	h := Header{
		H:       binary.BigEndian.Uint16(data[4:6]),
		W:       binary.BigEndian.Uint16(data[6:8]),
		C:       data[8],
		L:       data[9],
		Hp:      binary.BigEndian.Uint16(data[10:12]),
		Wp:      binary.BigEndian.Uint16(data[12:14]),
		Wavelet: data[14],
		Nbp:     data[15],
		CRC32:   binary.BigEndian.Uint32(data[16:20]),
	}
	if h.Wavelet != WaveletInteger53 {
		return Header{}, codec.NewKindError(codec.KindFormatReject, ErrBadWavelet)
	}
	if h.C != 1 && h.C != 3 {
		return Header{}, codec.NewKindError(codec.KindFormatReject, ErrBadChannelCount)
	}
	return h, nil
}
