package frame

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/Neumenon/ttree/ttree"
)

// Reader reads TF1 frames from an underlying io.Reader.
type Reader struct {
	r          io.Reader
	maxPayload int
	verifyCRC  bool
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithMaxPayload overrides the default MaxPayloadSize cap.
func WithMaxPayload(max int) ReaderOption {
	return func(r *Reader) { r.maxPayload = max }
}

// WithoutCRCVerification disables CRC verification, which is on by
// default whenever a frame declares one.
func WithoutCRCVerification() ReaderOption {
	return func(r *Reader) { r.verifyCRC = false }
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	reader := &Reader{r: r, maxPayload: MaxPayloadSize, verifyCRC: true}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

func readByte(r io.Reader) (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// readUvintFrom reads a LEB128 uvint one byte at a time, since the
// frame reader has no random-access buffer to hand ttree.ReadUvint.
func readUvintFrom(r io.Reader) (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := readByte(r)
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 64 {
			return 0, &ParseError{Reason: "uvint overflow"}
		}
	}
}

// Next reads and returns the next frame, or io.EOF when the stream ends
// cleanly on a frame boundary.
func (r *Reader) Next() (*Frame, error) {
	version, err := readByte(r.r)
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("frame: read version: %w", err)
	}
	kindByte, err := readByte(r.r)
	if err != nil {
		return nil, fmt.Errorf("frame: read kind: %w", err)
	}
	flagsByte, err := readByte(r.r)
	if err != nil {
		return nil, fmt.Errorf("frame: read flags: %w", err)
	}
	fl := Flags(flagsByte)

	sid, err := readUvintFrom(r.r)
	if err != nil {
		return nil, fmt.Errorf("frame: read sid: %w", err)
	}
	seq, err := readUvintFrom(r.r)
	if err != nil {
		return nil, fmt.Errorf("frame: read seq: %w", err)
	}
	payloadLen, err := readUvintFrom(r.r)
	if err != nil {
		return nil, fmt.Errorf("frame: read len: %w", err)
	}
	if payloadLen > uint64(r.maxPayload) {
		return nil, &ParseError{Reason: fmt.Sprintf("payload too large: %d > %d", payloadLen, r.maxPayload)}
	}

	f := &Frame{Version: version, Kind: Kind(kindByte), SID: sid, Seq: seq, Final: fl&FlagFinal != 0}

	if fl&FlagHasCRC != 0 {
		var b [4]byte
		if _, err := io.ReadFull(r.r, b[:]); err != nil {
			return nil, fmt.Errorf("frame: read crc: %w", err)
		}
		v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
		f.CRC = &v
	}
	if fl&FlagHasBase != 0 {
		var base [32]byte
		if _, err := io.ReadFull(r.r, base[:]); err != nil {
			return nil, fmt.Errorf("frame: read base: %w", err)
		}
		f.Base = &base
	}

	if payloadLen > 0 {
		f.Payload = make([]byte, payloadLen)
		if _, err := io.ReadFull(r.r, f.Payload); err != nil {
			return nil, fmt.Errorf("frame: read payload: %w", err)
		}
	}

	if r.verifyCRC && f.CRC != nil {
		if got := crc32.Checksum(f.Payload, crcTable); got != *f.CRC {
			return nil, &CRCMismatchError{Expected: *f.CRC, Got: got}
		}
	}

	return f, nil
}

// Tree decodes f's payload as a top-level TTREE node using unhash. It
// is a convenience for the common case where f.Kind == KindDoc.
func (f *Frame) Tree(unhash ttree.Unhash) (*ttree.Tree, error) {
	return ttree.Decode(f.Payload, unhash)
}

// ReadAll reads every frame until a clean EOF.
func (r *Reader) ReadAll() ([]*Frame, error) {
	var frames []*Frame
	for {
		f, err := r.Next()
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
}
