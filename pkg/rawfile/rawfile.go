// Package rawfile loads headerless raw sensor dumps from disk for the
// command-line tools. Files compressed with zstd are decompressed
// transparently, detected by magic number rather than extension.
package rawfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// zstd frame magic, little-endian 0xFD2FB528.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Load reads the raw sensor bytes from path, decompressing zstd frames
// when present. The returned buffer carries no header: width, height,
// depth and CFA pattern must come from elsewhere.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading raw file: %w", err)
	}
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, nil
	}

	dec, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening zstd stream: %w", err)
	}
	defer dec.Close()

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}
	return raw, nil
}
