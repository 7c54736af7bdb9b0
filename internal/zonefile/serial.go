package zonefile

import (
	"time"

	"github.com/cespare/xxhash/v2"
)

// ComputeSerial implements the RFC 1912 §2.2 dated-serial rule: a
// human-readable, monotonically non-decreasing serial. now must be UTC.
// When the content hash is unchanged from lastHash, the previous serial is
// retained verbatim (no churn for a no-op reconcile).
func ComputeSerial(now time.Time, newHash, lastHash string, lastSerial uint32) uint32 {
	if newHash == lastHash && lastHash != "" {
		return lastSerial
	}

	nowSerial := uint32(now.Year())*1000000 + uint32(now.Month())*10000 + uint32(now.Day())*100

	if nowSerial > lastSerial+1 {
		return nowSerial
	}
	return lastSerial + 1
}

// Hasher computes an order-sensitive hash over the fields written to it.
// ContentHash feeds it a zone's spec and materialized entries; the SOA entry
// is left out by the caller, not by Hasher (hashing the SOA would create a
// hash→serial feedback loop, since the SOA's rdata embeds the serial).
type Hasher struct {
	h *xxhash.Digest
}

// NewHasher returns a fresh Hasher.
func NewHasher() *Hasher {
	return &Hasher{h: xxhash.New()}
}

// Write feeds an arbitrary canonical field into the running hash. Callers
// must write fields in a fixed, documented order for determinism.
func (h *Hasher) Write(s string) {
	_, _ = h.h.WriteString(s)
	_, _ = h.h.Write([]byte{0}) // field separator, avoids "ab"+"c" == "a"+"bc" collisions
}

// Sum returns the hex-encoded digest accumulated so far.
func (h *Hasher) Sum() string {
	return hexUint64(h.h.Sum64())
}

const hexDigits = "0123456789abcdef"

func hexUint64(v uint64) string {
	buf := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		buf[i] = hexDigits[v&0xf]
		v >>= 4
	}
	return string(buf)
}
