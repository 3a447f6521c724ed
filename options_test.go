package xdoc

import (
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	o := collect(nil)
	assert.Equal(t, DefaultMaxDepth, o.maxDepth)
	assert.True(t, o.permissive)
}

func TestOptionsFromConfig(t *testing.T) {
	conf := testconfig.Conf{
		ConfigMaxDepth:   "12",
		ConfigPermissive: "false",
	}
	o := collect(OptionsFromConfig(conf))
	assert.Equal(t, 12, o.maxDepth)
	assert.False(t, o.permissive)
}

func TestOptionsFromConfigKeepsDefaults(t *testing.T) {
	conf := testconfig.Conf{
		ConfigMaxDepth: 3,
	}
	opts := OptionsFromConfig(conf)
	assert.Len(t, opts, 1)
	o := collect(opts)
	assert.Equal(t, 3, o.maxDepth)
	assert.True(t, o.permissive, "unset key must not change permissive default")
}
