package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"
)

func TestTOMLResolver(t *testing.T) {
	resolver, err := TOMLResolver(strings.NewReader("tab_stop = 4\ntotals_only = true\n"))
	assert.NoError(t, err)

	t.Run("HyphenatedFlagName", func(t *testing.T) {
		flag := &kong.Flag{Value: &kong.Value{Name: "tab-stop"}}
		v, err := resolver.Resolve(nil, nil, flag)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), v.(int64))
	})

	t.Run("BoolValue", func(t *testing.T) {
		flag := &kong.Flag{Value: &kong.Value{Name: "totals-only"}}
		v, err := resolver.Resolve(nil, nil, flag)
		assert.NoError(t, err)
		assert.Equal(t, true, v.(bool))
	})

	t.Run("MissingKey", func(t *testing.T) {
		flag := &kong.Flag{Value: &kong.Value{Name: "json"}}
		v, err := resolver.Resolve(nil, nil, flag)
		assert.NoError(t, err)
		assert.Equal(t, nil, v)
	})
}

func TestTOMLResolverInvalid(t *testing.T) {
	_, err := TOMLResolver(strings.NewReader("not valid toml ["))
	assert.Error(t, err)
}
