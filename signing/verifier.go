package signing

import (
	"errors"
	"fmt"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/spacemeshos/go-pluginaccount/common/types"
	"github.com/spacemeshos/go-pluginaccount/hash"
)

type edVerifierOption struct {
	prefix    []byte
	cacheSize int
}

// VerifierOptionFunc to modify verifier.
type VerifierOptionFunc func(*edVerifierOption) error

// WithVerifierPrefix sets the prefix used by EdVerifier. This usually is the chain id.
func WithVerifierPrefix(prefix []byte) VerifierOptionFunc {
	return func(opts *edVerifierOption) error {
		opts.prefix = prefix
		return nil
	}
}

// WithCacheSize sets the number of verification results that are remembered.
// Zero disables the cache.
func WithCacheSize(size int) VerifierOptionFunc {
	return func(opts *edVerifierOption) error {
		if size < 0 {
			return errors.New("cache size must not be negative")
		}
		opts.cacheSize = size
		return nil
	}
}

// EdVerifier verifies ed25519 signatures over domain separated messages.
type EdVerifier struct {
	prefix []byte
	cache  *lru.Cache[[hash.Size]byte, bool]
}

// NewEdVerifier creates a verifier with the default cache of 1024 results.
func NewEdVerifier(opts ...VerifierOptionFunc) (*EdVerifier, error) {
	cfg := &edVerifierOption{cacheSize: 1024}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	verifier := &EdVerifier{prefix: cfg.prefix}
	if cfg.cacheSize > 0 {
		cache, err := lru.New[[hash.Size]byte, bool](cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create cache: %w", err)
		}
		verifier.cache = cache
	}
	return verifier, nil
}

// Verify verifies that a signature matches public key and message.
func (ev *EdVerifier) Verify(d Domain, pub types.Felt, m []byte, sig Signature) bool {
	msg := message(ev.prefix, d, m)
	if ev.cache == nil {
		return ed25519.Verify(pub[:], msg, sig[:])
	}
	key := hash.Sum(pub[:], sig[:], msg)
	if valid, ok := ev.cache.Get(key); ok {
		verifyCache.WithLabelValues(hit).Inc()
		return valid
	}
	verifyCache.WithLabelValues(miss).Inc()
	valid := ed25519.Verify(pub[:], msg, sig[:])
	ev.cache.Add(key, valid)
	return valid
}
