package tabular

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Fingerprint returns a deterministic digest of the snapshot contents, used
// only to detect 'no change' between two reads of a source. The encoding
// length-prefixes every row and cell so that grids with shifted cell
// boundaries hash differently.
func Fingerprint(s Snapshot) string {
	h := sha256.New()

	var prefix [8]byte

	binary.BigEndian.PutUint64(prefix[:], uint64(len(s)))
	h.Write(prefix[:])

	for _, row := range s {
		binary.BigEndian.PutUint64(prefix[:], uint64(len(row)))
		h.Write(prefix[:])

		for _, cell := range row {
			binary.BigEndian.PutUint64(prefix[:], uint64(len(cell)))
			h.Write(prefix[:])
			h.Write([]byte(cell))
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}
