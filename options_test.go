package yamlns_test

import (
	"testing"

	"github.com/0xalexb/yamlns"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSubConfigKey(t *testing.T) {
	t.Parallel()

	var opts yamlns.Options

	yamlns.WithSubConfigKey("template")(&opts)

	require.Equal(t, "template", opts.SubConfigKey)
}

func TestWithModifiable(t *testing.T) {
	t.Parallel()

	var opts yamlns.Options

	yamlns.WithModifiable(false)(&opts)

	require.False(t, opts.Modifiable)
}

func TestWithLoader(t *testing.T) {
	t.Parallel()

	testLoader := &mapLoader{docs: map[string]map[string]any{
		"doc.yaml": {"key": "value"},
	}}

	var opts yamlns.Options

	yamlns.WithLoader(testLoader)(&opts)

	require.Equal(t, yamlns.Loader(testLoader), opts.Loader)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := yamlns.New(map[string]any{})
	require.NoError(t, err)

	assert.True(t, cfg.Modifiable())
	assert.Equal(t, yamlns.DefaultSubConfigKey, cfg.SubConfigKey())
}
