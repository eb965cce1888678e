package container

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/cocosip/ccsds122/codec"
)

// ErrTruncatedPacket is returned when a packet header or its payload runs
// past the end of the input.
var ErrTruncatedPacket = fmt.Errorf("container: truncated packet")

// ErrSequenceGap is returned when packet seq numbers aren't consecutive
// starting from 0.
var ErrSequenceGap = fmt.Errorf("container: packet out of sequence")

// ReadPackets parses a run of packets from data until data is exhausted,
// validating seq order and concatenating payloads in order.
func ReadPackets(data []byte) ([]byte, error) {
	var payload []byte

	offset := 0
	wantSeq := uint16(0)
	for offset < len(data) {
		if offset+6 > len(data) {
			return nil, codec.NewKindError(codec.KindFormatReject, ErrTruncatedPacket)
		}
		seq := binary.BigEndian.Uint16(data[offset : offset+2])
		length := binary.BigEndian.Uint32(data[offset+2 : offset+6])
		offset += 6

		if seq != wantSeq {
			return nil, codec.NewKindError(codec.KindFormatReject, ErrSequenceGap)
		}
		if uint64(offset)+uint64(length) > uint64(len(data)) {
			return nil, codec.NewKindError(codec.KindFormatReject, ErrTruncatedPacket)
		}

		payload = append(payload, data[offset:offset+int(length)]...)
		offset += int(length)
		wantSeq++
	}

	return payload, nil
}

// ErrCRCMismatch is returned when the stored CRC doesn't match the
// concatenated packet payloads.
var ErrCRCMismatch = fmt.Errorf("container: crc32 mismatch")

// ParseFile splits a complete container into its header and verified
// bitstream payload, checking the header's magic/wavelet fields and its
// stored CRC32 (IEEE/ZIP polynomial, via hash/crc32) against the packet
// payloads.
func ParseFile(data []byte) (Header, []byte, error) {
	h, err := UnmarshalHeader(data)
	if err != nil {
		return Header{}, nil, err
	}

	payload, err := ReadPackets(data[HeaderSize:])
	if err != nil {
		return Header{}, nil, err
	}

	if crc32.ChecksumIEEE(payload) != h.CRC32 {
		return Header{}, nil, codec.NewKindError(codec.KindIntegrityFailure, ErrCRCMismatch)
	}

	return h, payload, nil
}
