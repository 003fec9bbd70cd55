package delta

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes a Delta's field names and values into a single
// uint64, used by tests and the CLI to deduplicate/compare decoded
// deltas without a deep equality walk. Grounded on arloliu-mebo's
// internal/hash metric-ID hashing, which uses the same xxhash/v2 for a
// compact, stable identity over structured data.
func Fingerprint(d Delta) uint64 {
	h := xxhash.New()
	var buf [8]byte

	for _, f := range d {
		_, _ = h.WriteString(f.Descriptor.Name)
		h.Write([]byte{byte(f.Value.Kind)})

		binary.LittleEndian.PutUint64(buf[:], uint64(f.Value.I))
		h.Write(buf[:])

		binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(f.Value.F))
		h.Write(buf[:4])

		h.Write(f.Value.Bytes)
	}

	return h.Sum64()
}
