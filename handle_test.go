package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeDataGetSetDelete(t *testing.T) {
	tr := New()
	h, err := tr.Add("10.0.0.0/8")
	require.NoError(t, err)

	_, err = h.Data().Get("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	h.Data().Set("asn", 65001)
	v, err := h.Data().Get("asn")
	require.NoError(t, err)
	assert.Equal(t, 65001, v)
	assert.Equal(t, 1, h.Data().Len())
	assert.Equal(t, []string{"asn"}, h.Data().Keys())

	require.NoError(t, h.Data().Delete("asn"))
	assert.Equal(t, 0, h.Data().Len())
	assert.ErrorIs(t, h.Data().Delete("asn"), ErrKeyNotFound)
}

func TestNodeHandleAttr(t *testing.T) {
	tr := New()
	h, err := tr.Add("10.0.0.0/8")
	require.NoError(t, err)

	for name, want := range map[string]any{
		"prefix":    "10.0.0.0/8",
		"network":   "10.0.0.0",
		"prefixlen": 8,
		"family":    IPv4,
	} {
		v, err := h.Attr(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, v, name)
	}

	data, err := h.Attr("data")
	require.NoError(t, err)
	assert.IsType(t, &NodeData{}, data)

	_, err = h.Attr("bogus")
	assert.ErrorIs(t, err, ErrAttributeNotFound)
}
