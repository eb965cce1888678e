package container

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
)

// WritePackets splits payload into MaxPayload-sized chunks and writes each
// as a packet (seq u16, length u32, payload) to a single buffer, seq
// starting at 0 and incrementing by 1.
func WritePackets(payload []byte) []byte {
	var buf bytes.Buffer

	seq := uint16(0)
	offset := 0
	for {
		end := offset + MaxPayload
		if end > len(payload) {
			end = len(payload)
		}
		chunk := payload[offset:end]

		var hdr [6]byte
		binary.BigEndian.PutUint16(hdr[0:2], seq)
		binary.BigEndian.PutUint32(hdr[2:6], uint32(len(chunk)))
		buf.Write(hdr[:])
		buf.Write(chunk)

		offset = end
		seq++
		if offset >= len(payload) {
			break
		}
	}

	return buf.Bytes()
}

// WriteFile assembles a complete container: header followed by the packet
// stream carrying payload. h.CRC32 is overwritten with the CRC32 of payload
// before marshaling, so callers don't need to compute it themselves.
func WriteFile(h Header, payload []byte) []byte {
	h.CRC32 = crc32.ChecksumIEEE(payload)

	out := make([]byte, 0, HeaderSize+len(payload)+6)
	out = append(out, MarshalHeader(h)...)
	out = append(out, WritePackets(payload)...)
	return out
}
