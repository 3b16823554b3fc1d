/*
cache.go implements the on-disk solution cache: a Brotli-compressed dump of
every compressed board in the solvable set, split into two groups so the
one bit distinguishing them never has to be written per entry.
*/
package pegsolitaire

import (
	"encoding/binary"
	"io"

	"github.com/andybalholm/brotli"
)

// highBit is bit 32 of a [Board.CompressedRepr] value: the single bit the
// cache format factors out of the per-entry encoding.
const highBit = uint64(1) << 32

// brotliQuality and brotliWindow mirror the settings the reference cache
// builder compresses the same data with: maximum quality, a 22-bit window.
const (
	brotliQuality = 11
	brotliWindow  = 22
)

/*
SaveCache writes boards to w as a Brotli-compressed stream: a little-endian
u32 count H, H little-endian u32 values (the low 32 bits of every
compressed board whose 33rd bit is set), followed by the low-32-bit form of
every remaining board (33rd bit clear) until the writer is closed. Loading
restores the 33rd bit from which group an entry was read out of, instead of
storing it per entry.
*/
func SaveCache(w io.Writer, boards []Board) error {
	var high, low []uint32
	for _, b := range boards {
		c := b.CompressedRepr()
		if c&highBit != 0 {
			high = append(high, uint32(c&0xFFFFFFFF))
		} else {
			low = append(low, uint32(c))
		}
	}

	bw := brotli.NewWriterOptions(w, brotli.WriterOptions{
		Quality: brotliQuality,
		LGWin:   brotliWindow,
	})
	defer bw.Close()

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(high)))
	if _, err := bw.Write(lenBuf[:]); err != nil {
		return err
	}

	var v [4]byte
	for _, c := range high {
		binary.LittleEndian.PutUint32(v[:], c)
		if _, err := bw.Write(v[:]); err != nil {
			return err
		}
	}
	for _, c := range low {
		binary.LittleEndian.PutUint32(v[:], c)
		if _, err := bw.Write(v[:]); err != nil {
			return err
		}
	}
	return bw.Close()
}

// LoadCache reads a stream written by [SaveCache] back into a slice of
// boards. The order of the returned slice matches the order entries were
// written in (high-bit group first, then the rest); callers that need a
// particular order should sort after loading.
func LoadCache(r io.Reader) ([]Board, error) {
	br := brotli.NewReader(r)

	var lenBuf [4]byte
	if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
		return nil, err
	}
	count := binary.LittleEndian.Uint32(lenBuf[:])

	boards := make([]Board, 0, count)

	var v [4]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(br, v[:]); err != nil {
			return nil, err
		}
		c := uint64(binary.LittleEndian.Uint32(v[:])) | highBit
		boards = append(boards, BoardFromCompressed(c))
	}

	for {
		_, err := io.ReadFull(br, v[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		c := uint64(binary.LittleEndian.Uint32(v[:]))
		boards = append(boards, BoardFromCompressed(c))
	}

	return boards, nil
}
