package signing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifier(t *testing.T) {
	prefix := []byte("chain")
	for _, size := range []int{0, 16} {
		signer, err := NewEdSigner(WithPrefix(prefix))
		require.NoError(t, err)
		verifier, err := NewEdVerifier(WithVerifierPrefix(prefix), WithCacheSize(size))
		require.NoError(t, err)

		msg := []byte("hello")
		sig := signer.Sign(TX, msg)
		for i := 0; i < 2; i++ {
			require.True(t, verifier.Verify(TX, signer.PublicKey(), msg, sig))
			require.False(t, verifier.Verify(SESSION, signer.PublicKey(), msg, sig), "domain is part of the message")
			require.False(t, verifier.Verify(TX, signer.PublicKey(), []byte("other"), sig))
		}

		other, err := NewEdVerifier(WithVerifierPrefix([]byte("other")))
		require.NoError(t, err)
		require.False(t, other.Verify(TX, signer.PublicKey(), msg, sig))
	}
}

func TestVerifierInvalidCache(t *testing.T) {
	_, err := NewEdVerifier(WithCacheSize(-1))
	require.Error(t, err)
}
