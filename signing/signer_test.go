package signing

import (
	"bytes"
	"crypto/rand"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-pluginaccount/common/types"
)

func TestNewEdSignerFromBuffer(t *testing.T) {
	_, err := NewEdSigner(WithPrivateKey([]byte{1, 2, 3}))
	require.ErrorContains(t, err, "invalid key length")

	_, err = NewEdSigner(WithPrivateKey(make([]byte, PrivateKeySize)))
	require.ErrorContains(t, err, "private and public do not match")
}

func TestEdSigner_Sign(t *testing.T) {
	ed, err := NewEdSigner(WithPrefix([]byte("chain")))
	require.NoError(t, err)

	m := make([]byte, 4)
	rand.Read(m)
	sig := ed.Sign(TX, m)
	signed := append([]byte("chain"), byte(TX))
	signed = append(signed, m...)

	pub := ed.PublicKey()
	require.Truef(t, ed25519.Verify(pub[:], signed, sig[:]), "failed to verify message %x with sig %x", m, sig)
}

func TestEdSigner_WithPrivateKey(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)

	ed2, err := NewEdSigner(WithPrivateKey(ed.PrivateKey()))
	require.NoError(t, err)
	require.True(t, ed.Matches(ed2))
	require.Equal(t, ed.PublicKey(), ed2.PublicKey())
}

func TestEdSigner_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "owner.key")
	ed, err := NewEdSigner(ToFile(path))
	require.NoError(t, err)
	require.Equal(t, "owner.key", ed.Name())

	_, err = NewEdSigner(ToFile(path))
	require.ErrorIs(t, err, fs.ErrExist)

	loaded, err := NewEdSigner(FromFile(path))
	require.NoError(t, err)
	require.Equal(t, ed.PublicKey(), loaded.PublicKey())

	require.NoError(t, os.WriteFile(path, []byte("abcd"), 0o600))
	_, err = NewEdSigner(FromFile(path))
	require.ErrorContains(t, err, "invalid key size")
}

func TestEdSigner_Deterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 64)
	a, err := NewEdSigner(WithKeyFromRand(bytes.NewReader(seed)))
	require.NoError(t, err)
	b, err := NewEdSigner(WithKeyFromRand(bytes.NewReader(seed)))
	require.NoError(t, err)
	require.Equal(t, a.PublicKey(), b.PublicKey())
}

func TestSignatureFelts(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)
	sig := ed.Sign(TX, []byte("msg"))
	r, s := sig.Felts()
	require.Equal(t, sig, JoinSignature(r, s))
	require.Equal(t, sig[:types.FeltLength], r[:])
}
