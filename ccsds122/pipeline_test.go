package ccsds122

import (
	"bytes"
	"errors"
	"hash/crc32"
	"testing"

	"github.com/cocosip/ccsds122/codec"
	"github.com/cocosip/ccsds122/internal/container"
)

func constantPlane(n int, v byte) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = v
	}
	return p
}

// S1: constant 4x4 RGB image, all pixels (128,128,128), L=1.
func TestS1ConstantImage(t *testing.T) {
	h, w := 4, 4
	planes := [][]byte{constantPlane(h*w, 128), constantPlane(h*w, 128), constantPlane(h*w, 128)}

	data, err := Encode(h, w, 3, 1, planes)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	gotH, gotW, gotC, gotPlanes, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if gotH != h || gotW != w || gotC != 3 {
		t.Fatalf("dims: got (%d,%d,%d), want (%d,%d,3)", gotH, gotW, gotC, h, w)
	}
	for c, p := range gotPlanes {
		if !bytes.Equal(p, planes[c]) {
			t.Fatalf("channel %d mismatch", c)
		}
	}
}

// S2: 8x8 ramp, R=G=B=r*8+c, L=1.
func TestS2Ramp(t *testing.T) {
	h, w := 8, 8
	ramp := make([]byte, h*w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			ramp[r*w+c] = byte(r*w + c)
		}
	}
	planes := [][]byte{ramp, ramp, ramp}

	data, err := Encode(h, w, 3, 1, planes)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, _, _, gotPlanes, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for c := range planes {
		if !bytes.Equal(gotPlanes[c], planes[c]) {
			t.Fatalf("channel %d mismatch", c)
		}
	}
}

// S3: 2x2 RGB all zero except R at (0,0)=255, L=1.
func TestS3SingleNonzero(t *testing.T) {
	h, w := 2, 2
	r := []byte{255, 0, 0, 0}
	g := constantPlane(h*w, 0)
	b := constantPlane(h*w, 0)
	planes := [][]byte{r, g, b}

	data, err := Encode(h, w, 3, 1, planes)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, _, _, gotPlanes, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for c := range planes {
		if !bytes.Equal(gotPlanes[c], planes[c]) {
			t.Fatalf("channel %d mismatch: got %v, want %v", c, gotPlanes[c], planes[c])
		}
	}
}

// S4: 5x3 RGB, odd dimensions requiring edge-replication padding to 6x4, L=1.
func TestS4OddDimensionsWithPadding(t *testing.T) {
	h, w := 5, 3
	mk := func(seed byte) []byte {
		p := make([]byte, h*w)
		for i := range p {
			p[i] = byte(int(seed)+i*13) % 256
		}
		return p
	}
	planes := [][]byte{mk(1), mk(50), mk(200)}

	data, err := Encode(h, w, 3, 1, planes)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	gotH, gotW, _, gotPlanes, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if gotH != h || gotW != w {
		t.Fatalf("dims: got (%d,%d), want (%d,%d)", gotH, gotW, h, w)
	}
	for c := range planes {
		if !bytes.Equal(gotPlanes[c], planes[c]) {
			t.Fatalf("channel %d mismatch", c)
		}
	}
}

// S5: 16x16 RGB pseudo-random content, L=3, exercising the full pyramid.
func TestS5MultiLevel(t *testing.T) {
	h, w := 16, 16
	mk := func(seed int) []byte {
		p := make([]byte, h*w)
		x := seed
		for i := range p {
			x = (x*1103515245 + 12345) & 0x7fffffff
			p[i] = byte(x)
		}
		return p
	}
	planes := [][]byte{mk(1), mk(2), mk(3)}

	data, err := Encode(h, w, 3, 3, planes)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, _, _, gotPlanes, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for c := range planes {
		if !bytes.Equal(gotPlanes[c], planes[c]) {
			t.Fatalf("channel %d mismatch", c)
		}
	}
}

// S6: flip one bit in a packet payload; decode must report IntegrityFailure.
func TestS6CorruptionDetection(t *testing.T) {
	h, w := 8, 8
	ramp := make([]byte, h*w)
	for i := range ramp {
		ramp[i] = byte(i)
	}
	planes := [][]byte{ramp, ramp, ramp}

	data, err := Encode(h, w, 3, 1, planes)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Flip a bit in the last byte of the packet payload.
	data[len(data)-1] ^= 0x01

	_, _, _, _, err = Decode(data)
	if err == nil {
		t.Fatal("expected IntegrityFailure for corrupted payload")
	}
	var kerr *codec.KindError
	if !errors.As(err, &kerr) || kerr.Kind != codec.KindIntegrityFailure {
		t.Fatalf("expected IntegrityFailure, got %v", err)
	}
}

// Property 4: CRC32 of the concatenated packet payloads equals the header's
// stored CRC.
func TestCRCCorrectness(t *testing.T) {
	h, w := 4, 4
	planes := [][]byte{constantPlane(h*w, 10), constantPlane(h*w, 20), constantPlane(h*w, 30)}

	data, err := Encode(h, w, 3, 1, planes)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	hdr, payload, err := container.ParseFile(data)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if crc32.ChecksumIEEE(payload) != hdr.CRC32 {
		t.Fatal("stored CRC does not match concatenated packet payloads")
	}
}

// Property 7: encoding the same image twice produces byte-identical output.
func TestDeterminism(t *testing.T) {
	h, w := 6, 10
	mk := func(seed int) []byte {
		p := make([]byte, h*w)
		for i := range p {
			p[i] = byte((i*7 + seed) % 256)
		}
		return p
	}
	planes := [][]byte{mk(1), mk(2), mk(3)}

	a, err := Encode(h, w, 3, 1, planes)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := Encode(h, w, 3, 1, planes)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("two encodes of the same image produced different bytes")
	}
}

func TestEncodeLevelsOutOfRange(t *testing.T) {
	h, w := 4, 4
	planes := [][]byte{constantPlane(h*w, 1), constantPlane(h*w, 1), constantPlane(h*w, 1)}

	// 2^3 = 8 > min(4,4), must be rejected.
	_, err := Encode(h, w, 3, 3, planes)
	if err == nil {
		t.Fatal("expected ParameterOutOfRange error")
	}
	var kerr *codec.KindError
	if !errors.As(err, &kerr) || kerr.Kind != codec.KindParameterOutOfRange {
		t.Fatalf("expected ParameterOutOfRange error, got %v", err)
	}
}

func TestEncodeGrayscaleSingleChannel(t *testing.T) {
	h, w := 4, 4
	planes := [][]byte{constantPlane(h*w, 77)}

	data, err := Encode(h, w, 1, 1, planes)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	gotH, gotW, gotC, gotPlanes, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if gotH != h || gotW != w || gotC != 1 {
		t.Fatalf("dims: got (%d,%d,%d)", gotH, gotW, gotC)
	}
	if !bytes.Equal(gotPlanes[0], planes[0]) {
		t.Fatal("grayscale channel mismatch")
	}
}
