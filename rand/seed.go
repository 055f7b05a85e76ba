package rand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/colgreen/Redzen-sub000/logger"
)

// SeedSource mints seeds for generator construction. Seeding many generators
// from the wall clock in quick succession hands several of them the same
// stream; a process-wide SeedSource avoids that by walking a single
// SplitMix64 counter under a lock, with the counter itself initialized from
// OS entropy. The lock covers only the one counter step, so contention is
// negligible even when generators are minted per request.
type SeedSource struct {
	mu sync.Mutex
	sm SplitMix64
}

// NewSeedSource returns a SeedSource initialized from crypto/rand. If the
// entropy read fails the source falls back to a time-derived state, which
// keeps seed minting available but loses unpredictability across process
// restarts; the fallback is logged.
func NewSeedSource() *SeedSource {
	s := &SeedSource{}
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		logger.WarnErr(err, "seed source entropy unavailable, falling back to clock")
		s.sm.Seed(Mix64(uint64(time.Now().UnixNano())))
		return s
	}
	s.sm.Seed(binary.LittleEndian.Uint64(buf[:]))
	return s
}

// Next returns the next seed.
func (s *SeedSource) Next() uint64 {
	s.mu.Lock()
	seed := s.sm.Uint64()
	s.mu.Unlock()
	return seed
}

var (
	defaultSeedSource     *SeedSource
	defaultSeedSourceOnce sync.Once
)

// NextSeed returns the next seed from the process-wide default SeedSource.
func NextSeed() uint64 {
	defaultSeedSourceOnce.Do(func() {
		defaultSeedSource = NewSeedSource()
	})
	return defaultSeedSource.Next()
}

// SeedFromString derives a stable seed from s, so that named streams
// ("worker-3", a scenario id) reproduce across runs and hosts.
func SeedFromString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// SeedFromBytes derives a stable seed from b.
func SeedFromBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
