package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"

	"github.com/matzehuels/planegraph/pkg/geom"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashPoints hashes a point sequence. The hash depends on order and on the
// exact bit pattern of every coordinate, so it only matches inputs that
// produce identical intersection graphs.
func HashPoints(points []geom.Point) string {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(len(points)))
	h.Write(buf[:])
	for _, p := range points {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(p.X))
		h.Write(buf[:])
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(p.Y))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}
