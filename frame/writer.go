package frame

import (
	"hash/crc32"
	"io"

	"github.com/Neumenon/ttree/ttree"
)

// Writer writes TF1 frames to an underlying io.Writer.
type Writer struct {
	w       io.Writer
	withCRC bool
}

// NewWriter creates a Writer that writes frames as given, without
// computing a CRC unless the caller supplies one on the Frame itself.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// NewWriterWithCRC creates a Writer that computes and attaches a CRC-32
// of the payload to every frame that does not already carry one.
func NewWriterWithCRC(w io.Writer) *Writer {
	return &Writer{w: w, withCRC: true}
}

// WriteFrame writes f in full: header, optional CRC, optional base
// hash, then payload.
func (w *Writer) WriteFrame(f *Frame) error {
	crc := f.CRC
	if crc == nil && w.withCRC {
		c := crc32.Checksum(f.Payload, crcTable)
		crc = &c
	}

	buf := ttree.NewBuffer(32 + len(f.Payload))
	version := f.Version
	if version == 0 {
		version = Version
	}
	buf.AddByte(version)
	buf.AddByte(byte(f.Kind))

	fl := f.flags()
	if crc != nil {
		fl |= FlagHasCRC
	}
	buf.AddByte(byte(fl))

	ttree.WriteUvint(buf, f.SID)
	ttree.WriteUvint(buf, f.Seq)
	ttree.WriteUvint(buf, uint64(len(f.Payload)))

	if crc != nil {
		v := *crc
		buf.AddBytes([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
	}
	if f.Base != nil {
		buf.AddBytes(f.Base[:])
	}
	buf.AddBytes(f.Payload)

	_, err := w.w.Write(buf.Bytes())
	return err
}

// WriteDoc writes a doc frame carrying an already-encoded TTREE node.
func (w *Writer) WriteDoc(sid, seq uint64, payload []byte) error {
	return w.WriteFrame(&Frame{SID: sid, Seq: seq, Kind: KindDoc, Payload: payload})
}

// WriteTree encodes t with ttree.Encode and writes it as a doc frame.
func (w *Writer) WriteTree(sid, seq uint64, t *ttree.Tree) error {
	payload, err := ttree.Encode(t)
	if err != nil {
		return err
	}
	return w.WriteDoc(sid, seq, payload)
}

// WriteAck writes an acknowledgement frame.
func (w *Writer) WriteAck(sid, seq uint64) error {
	return w.WriteFrame(&Frame{SID: sid, Seq: seq, Kind: KindAck})
}

// WriteErr writes an error frame whose payload is a TTREE String
// encoding msg.
func (w *Writer) WriteErr(sid, seq uint64, msg string) error {
	payload, err := ttree.Encode(ttree.Str(msg))
	if err != nil {
		return err
	}
	return w.WriteFrame(&Frame{SID: sid, Seq: seq, Kind: KindErr, Payload: payload})
}

// WritePing writes a keepalive frame.
func (w *Writer) WritePing(sid, seq uint64) error {
	return w.WriteFrame(&Frame{SID: sid, Seq: seq, Kind: KindPing})
}

// WritePong writes a ping response frame.
func (w *Writer) WritePong(sid, seq uint64) error {
	return w.WriteFrame(&Frame{SID: sid, Seq: seq, Kind: KindPong})
}

// WriteFinal writes the last frame of a stream, marking Flags/Final.
func (w *Writer) WriteFinal(sid, seq uint64, kind Kind, payload []byte) error {
	return w.WriteFrame(&Frame{SID: sid, Seq: seq, Kind: kind, Payload: payload, Final: true})
}
