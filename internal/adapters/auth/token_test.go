package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_IssueAndVerify(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")
	verifier := NewJWTVerifier("test-secret")

	token, err := issuer.Issue("svc-dashboard", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "svc-dashboard", subject)
}

func TestJWTVerifier_WrongSecret(t *testing.T) {
	token, err := NewJWTIssuer("secret-a").Issue("svc-dashboard", time.Hour)
	require.NoError(t, err)

	_, err = NewJWTVerifier("secret-b").Verify(token)
	require.Error(t, err)
}

func TestJWTVerifier_ExpiredToken(t *testing.T) {
	token, err := NewJWTIssuer("test-secret").Issue("svc-dashboard", -time.Minute)
	require.NoError(t, err)

	_, err = NewJWTVerifier("test-secret").Verify(token)
	require.Error(t, err)
}

func TestJWTVerifier_Garbage(t *testing.T) {
	_, err := NewJWTVerifier("test-secret").Verify("not-a-token")
	require.Error(t, err)
}

func TestJWTVerifier_EmptySubject(t *testing.T) {
	token, err := NewJWTIssuer("test-secret").Issue("", time.Hour)
	require.NoError(t, err)

	_, err = NewJWTVerifier("test-secret").Verify(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no subject")
}
