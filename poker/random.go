package poker

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// CryptoSource draws from the operating system CSPRNG.
type CryptoSource struct{}

func (CryptoSource) Float64() float64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// ByteReader adapts a RandomSource to io.Reader so that byte oriented
// consumers (identifier generators) share the injected randomness.
type ByteReader struct {
	Source RandomSource
}

func (r ByteReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.Source.Float64() * 256)
	}
	return len(p), nil
}
