package extensions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgekit/cloudfront-extensions/infra/lib/extensions"
)

func TestSerializeCountryTableDeterministic(t *testing.T) {
	a, err := extensions.SerializeCountryTable(map[string]string{"US": "a.com", "CN": "b.cn", "DE": "c.de"})
	require.NoError(t, err)
	b, err := extensions.SerializeCountryTable(map[string]string{"DE": "c.de", "CN": "b.cn", "US": "a.com"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSerializeCountryTableRejectsEmpty(t *testing.T) {
	_, err := extensions.SerializeCountryTable(nil)
	assert.ErrorIs(t, err, extensions.ErrInvalidConfiguration)
}

func TestParseCountryTableRejectsGarbage(t *testing.T) {
	_, err := extensions.ParseCountryTable("not quoted")
	assert.Error(t, err)

	_, err = extensions.ParseCountryTable(`"not json"`)
	assert.Error(t, err)
}

func TestCountryTableEscapedForEmbedding(t *testing.T) {
	s, err := extensions.SerializeCountryTable(map[string]string{"US": "a.com"})
	require.NoError(t, err)
	// The value must be a double-quoted, escaped string literal.
	assert.Equal(t, `"{\"US\":\"a.com\"}"`, s)
}
