package ttree

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// EncodeCompressed encodes t exactly as Encode does, then compresses
// the result with zstd. The compressed bytes are NOT part of the core
// wire contract in §3/§4: they are an optional convenience for callers
// who want to spend CPU to shrink a tree before it goes over a slow
// transport, and must be paired with DecodeCompressed rather than
// Decode on the receiving end.
func EncodeCompressed(t *Tree) ([]byte, error) {
	raw, err := Encode(t)
	if err != nil {
		return nil, err
	}
	enc, err := sharedZstdEncoder()
	if err != nil {
		return nil, err
	}
	return enc.EncodeAll(raw, nil), nil
}

// DecodeCompressed reverses EncodeCompressed: it zstd-decompresses data
// and then decodes exactly one top-level node from the result, as
// Decode does.
func DecodeCompressed(data []byte, unhash Unhash) (*Tree, error) {
	dec, err := sharedZstdDecoder()
	if err != nil {
		return nil, err
	}
	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, corruptedf("zstd decompress: %v", err)
	}
	return Decode(raw, unhash)
}

var (
	zstdOnce    sync.Once
	zstdEnc     *zstd.Encoder
	zstdDec     *zstd.Decoder
	zstdInitErr error
)

func initZstd() {
	zstdEnc, zstdInitErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if zstdInitErr != nil {
		return
	}
	zstdDec, zstdInitErr = zstd.NewReader(nil)
}

func sharedZstdEncoder() (*zstd.Encoder, error) {
	zstdOnce.Do(initZstd)
	if zstdInitErr != nil {
		return nil, fmt.Errorf("ttree: zstd init: %w", zstdInitErr)
	}
	return zstdEnc, nil
}

func sharedZstdDecoder() (*zstd.Decoder, error) {
	zstdOnce.Do(initZstd)
	if zstdInitErr != nil {
		return nil, fmt.Errorf("ttree: zstd init: %w", zstdInitErr)
	}
	return zstdDec, nil
}
