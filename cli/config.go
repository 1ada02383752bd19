package cli

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pelletier/go-toml/v2"
)

// TOMLResolver is a kong configuration loader for TOML files. Flag names
// map to snake_case keys, so `--tab-stop` resolves from `tab_stop`.
func TOMLResolver(r io.Reader) (kong.Resolver, error) {
	values := map[string]interface{}{}
	if err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, err
	}

	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		name := strings.ReplaceAll(flag.Name, "-", "_")
		raw, ok := values[name]
		if !ok {
			return nil, nil
		}
		return raw, nil
	}

	return f, nil
}
