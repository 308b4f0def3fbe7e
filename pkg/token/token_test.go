package token_test

import (
	"testing"
	"time"

	"jobforge-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer() *token.Issuer {
	return token.NewIssuer("test-secret", 30*time.Minute, 7*24*time.Hour)
}

func TestIssueAndVerifyPair(t *testing.T) {
	issuer := newTestIssuer()

	pair, err := issuer.IssuePair("user-1", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := issuer.Verify(pair.AccessToken, token.KindAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)

	claims, err = issuer.Verify(pair.RefreshToken, token.KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestTypeConfusionRejected(t *testing.T) {
	issuer := newTestIssuer()

	pair, err := issuer.IssuePair("user-1", "a@x.com")
	require.NoError(t, err)

	t.Run("access token rejected on refresh path", func(t *testing.T) {
		_, err := issuer.Verify(pair.AccessToken, token.KindRefresh)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("refresh token rejected on access path", func(t *testing.T) {
		_, err := issuer.Verify(pair.RefreshToken, token.KindAccess)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}

func TestVerifyFailuresAreUniform(t *testing.T) {
	issuer := newTestIssuer()

	t.Run("expired token", func(t *testing.T) {
		expired := token.NewIssuer("test-secret", -time.Minute, -time.Minute)
		pair, err := expired.IssuePair("user-1", "a@x.com")
		require.NoError(t, err)

		_, err = issuer.Verify(pair.AccessToken, token.KindAccess)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := token.NewIssuer("other-secret", time.Minute, time.Minute)
		pair, err := other.IssuePair("user-1", "a@x.com")
		require.NoError(t, err)

		_, err = issuer.Verify(pair.AccessToken, token.KindAccess)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := issuer.Verify("not.a.token", token.KindAccess)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}
