package yamlns_test

import (
	"testing"

	"github.com/0xalexb/yamlns"

	"github.com/stretchr/testify/require"
)

func TestVersion_Default(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dev", yamlns.Version)
}
