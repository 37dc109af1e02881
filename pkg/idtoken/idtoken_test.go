package idtoken_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bookden/rental-service/pkg/idtoken"
)

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()
	c, err := idtoken.New("test-deployment-secret")
	require.NoError(t, err)

	for _, id := range []int{1, 2, 7, 42, 1000, 99999, 1 << 30} {
		tok := c.Encode(id)
		got, err := c.Decode(tok)
		require.NoError(t, err, "id %d", id)
		require.Equal(t, id, got)
	}
}

func TestCodec_Deterministic(t *testing.T) {
	t.Parallel()
	c, err := idtoken.New("test-deployment-secret")
	require.NoError(t, err)

	require.Equal(t, c.Encode(123), c.Encode(123))
	require.NotEqual(t, c.Encode(123), c.Encode(124))
}

func TestCodec_RejectsGarbage(t *testing.T) {
	t.Parallel()
	c, err := idtoken.New("test-deployment-secret")
	require.NoError(t, err)

	for _, tok := range []string{
		"",
		"abc",
		"not-a-token-at-all!!",
		strings.Repeat("A", 22),
		strings.Repeat("A", 100),
		c.Encode(5) + "x",
	} {
		_, err := c.Decode(tok)
		require.ErrorIs(t, err, idtoken.ErrInvalidToken, "token %q", tok)
	}
}

func TestCodec_RejectsForeignKey(t *testing.T) {
	t.Parallel()
	a, err := idtoken.New("secret-a")
	require.NoError(t, err)
	b, err := idtoken.New("secret-b")
	require.NoError(t, err)

	tok := a.Encode(77)
	_, err = b.Decode(tok)
	require.ErrorIs(t, err, idtoken.ErrInvalidToken)
}

func TestCodec_EmptySecret(t *testing.T) {
	t.Parallel()
	_, err := idtoken.New("")
	require.Error(t, err)
}
