package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/gestao-api/pkg/jwt"
)

func TestGenerateAndParse(t *testing.T) {
	in := pkgjwt.Principal{UserID: "u-1", Username: "ana", Role: "admin"}

	tok, err := pkgjwt.Generate("secret", in, "gestao-api", 5)
	require.NoError(t, err)

	out, err := pkgjwt.Parse("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate("secret", pkgjwt.Principal{UserID: "u-1"}, "gestao-api", 5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("other", tok)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	tok, err := pkgjwt.Generate("secret", pkgjwt.Principal{UserID: "u-1"}, "gestao-api", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("secret", tok)
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", pkgjwt.Principal{UserID: "u-1"}, "gestao-api", 5)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "x.y.z")
	assert.Error(t, err)
}
