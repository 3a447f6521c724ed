package xdoc

import "github.com/npillmayer/schuko"

// DefaultMaxDepth is the default limit for the nesting depth of elements.
const DefaultMaxDepth = 256

// Configuration keys for OptionsFromConfig.
const (
	ConfigMaxDepth   = "xdoc.maxdepth"
	ConfigPermissive = "xdoc.permissive"
)

type options struct {
	maxDepth   int
	permissive bool
}

func defaultOptions() options {
	return options{
		maxDepth:   DefaultMaxDepth,
		permissive: true,
	}
}

// Option is a type to configure a compilation.
type Option func(*options)

// MaxDepth limits the nesting depth of elements, with the root element
// having depth 1. Documents nesting deeper result in an error. n ≤ 0 removes
// the limit. Default is DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// Permissive lets the XML reader accept attributes without a value, which
// are then read with their own name as value (e.g., '<page wrap>' as
// '<page wrap="wrap">'). Default is true. Permissive has no effect
// on compiling generic trees.
func Permissive(b bool) Option {
	return func(o *options) {
		o.permissive = b
	}
}

// OptionsFromConfig derives compilation options from an application
// configuration. Keys not set in conf leave the defaults unchanged.
//
//     xdoc.maxdepth    integer, see MaxDepth
//     xdoc.permissive  boolean, see Permissive
//
func OptionsFromConfig(conf schuko.Configuration) []Option {
	var opts []Option
	if conf.IsSet(ConfigMaxDepth) {
		opts = append(opts, MaxDepth(conf.GetInt(ConfigMaxDepth)))
	}
	if conf.IsSet(ConfigPermissive) {
		opts = append(opts, Permissive(conf.GetBool(ConfigPermissive)))
	}
	return opts
}

func collect(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
