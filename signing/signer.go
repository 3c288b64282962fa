package signing

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/spacemeshos/go-pluginaccount/common/types"
)

// Domain separates messages signed by the same key for different purposes.
type Domain byte

const (
	// TX domain is used for batch signatures verified by the account.
	TX Domain = 0
	// SESSION domain is used by the owner to authorize session keys.
	SESSION Domain = 1
)

// String returns the string representation of a domain.
func (d Domain) String() string {
	switch d {
	case TX:
		return "TX"
	case SESSION:
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

type edSignerOption struct {
	priv   PrivateKey
	file   string
	prefix []byte
}

// EdSignerOptionFunc modifies EdSigner.
type EdSignerOptionFunc func(*edSignerOption) error

// WithPrefix sets the prefix used by EdSigner. This usually is the chain id.
func WithPrefix(prefix []byte) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		opt.prefix = prefix
		return nil
	}
}

// ToFile writes the private key to a file after creation.
func ToFile(path string) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.file != "" {
			return errors.New("invalid option ToFile: file already set")
		}
		opt.file = path
		return nil
	}
}

// FromFile loads hex encoded private key from a file.
func FromFile(path string) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option FromFile: private key already set")
		}
		if opt.file != "" {
			return errors.New("invalid option FromFile: file already set")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("open key file at %s: %w", path, err)
		}
		data = []byte(strings.TrimSpace(string(data)))
		if n := hex.DecodedLen(len(data)); n != PrivateKeySize {
			return fmt.Errorf("invalid key size %d/%d for %s", n, PrivateKeySize, filepath.Base(path))
		}
		dst := make([]byte, PrivateKeySize)
		if _, err := hex.Decode(dst, data); err != nil {
			return fmt.Errorf("decoding private key in %s: %w", filepath.Base(path), err)
		}
		if err := checkKeyPair(dst); err != nil {
			return err
		}
		opt.priv = dst
		opt.file = path
		return nil
	}
}

// WithPrivateKey sets the private key used by EdSigner.
func WithPrivateKey(priv PrivateKey) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option WithPrivateKey: private key already set")
		}
		if len(priv) != PrivateKeySize {
			return fmt.Errorf("invalid key length %d", len(priv))
		}
		if err := checkKeyPair(priv); err != nil {
			return err
		}
		opt.priv = priv
		return nil
	}
}

// WithKeyFromRand generates the private key from provided randomness source.
func WithKeyFromRand(rand io.Reader) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option WithKeyFromRand: private key already set")
		}
		_, priv, err := ed25519.GenerateKey(rand)
		if err != nil {
			return fmt.Errorf("generate key pair: %w", err)
		}
		opt.priv = priv
		return nil
	}
}

func checkKeyPair(priv PrivateKey) error {
	keyPair := ed25519.NewKeyFromSeed(priv[:ed25519.SeedSize])
	if !bytes.Equal(keyPair[ed25519.SeedSize:], priv[ed25519.SeedSize:]) {
		return errors.New("private and public do not match")
	}
	return nil
}

// EdSigner represents an ED25519 signer.
type EdSigner struct {
	priv   PrivateKey
	file   string
	prefix []byte
}

// NewEdSigner returns an ed signer. If no key option is provided the key is
// generated and optionally persisted with ToFile.
func NewEdSigner(opts ...EdSignerOptionFunc) (*EdSigner, error) {
	cfg := &edSignerOption{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.priv == nil {
		_, priv, err := ed25519.GenerateKey(nil)
		if err != nil {
			return nil, fmt.Errorf("generate key pair: %w", err)
		}
		cfg.priv = priv
		if cfg.file != "" {
			if err := save(cfg.file, priv); err != nil {
				return nil, err
			}
		}
	}
	return &EdSigner{
		priv:   cfg.priv,
		prefix: cfg.prefix,
		file:   cfg.file,
	}, nil
}

func save(path string, priv PrivateKey) error {
	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("stat key file %s: %w", filepath.Base(path), err)
	default:
		return fmt.Errorf("save key file %s: %w", filepath.Base(path), fs.ErrExist)
	}
	dst := make([]byte, hex.EncodedLen(len(priv)))
	hex.Encode(dst, priv)
	if err := os.WriteFile(path, dst, 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}

func message(prefix []byte, d Domain, m []byte) []byte {
	msg := make([]byte, 0, len(prefix)+1+len(m))
	msg = append(msg, prefix...)
	msg = append(msg, byte(d))
	return append(msg, m...)
}

// Sign signs the provided message.
func (es *EdSigner) Sign(d Domain, m []byte) Signature {
	return Signature(ed25519.Sign(es.priv, message(es.prefix, d, m)))
}

// PublicKey returns the public key of the signer as a felt.
func (es *EdSigner) PublicKey() types.Felt {
	return PublicKeyFelt(es.priv.Public().(ed25519.PublicKey))
}

// PrivateKey returns private key.
func (es *EdSigner) PrivateKey() PrivateKey {
	return es.priv
}

// Name returns the filename of the key file.
func (es *EdSigner) Name() string {
	if es.file == "" {
		return ""
	}
	return filepath.Base(es.file)
}

// Prefix returns the prefix that is prepended to every signed message.
func (es *EdSigner) Prefix() []byte {
	return es.prefix
}

// Matches implements the gomock.Matcher interface for testing.
func (es *EdSigner) Matches(x any) bool {
	if other, ok := x.(*EdSigner); ok {
		return bytes.Equal(es.priv, other.priv)
	}
	return false
}

func (es *EdSigner) String() string {
	return es.PublicKey().ShortString()
}
