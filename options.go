package yamlns

import "github.com/0xalexb/yamlns/loader"

// DefaultSubConfigKey is the entry name that marks a mapping as a
// sub-configuration reference.
const DefaultSubConfigKey = "yaml"

// Loader resolves a configuration reference into a nested mapping.
//
// A reference is either an already-in-memory map[string]any (returned as is)
// or a string naming a YAML document. Implementations report a resolution
// failure through an error; the result is never nil on success.
// See package loader for the default implementation.
type Loader interface {
	Load(config any) (map[string]any, error)
}

// Options holds construction settings for a Namespace.
type Options struct {
	Modifiable   bool
	SubConfigKey string
	Loader       Loader
}

// Option defines a function type for applying construction options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Modifiable:   true,
		SubConfigKey: DefaultSubConfigKey,
		Loader:       loader.New(),
	}
}

// WithModifiable sets the initial freeze state of the namespace.
// When false, the whole tree is frozen after construction.
func WithModifiable(modifiable bool) Option {
	return func(opts *Options) {
		opts.Modifiable = modifiable
	}
}

// WithSubConfigKey sets the entry name that marks sub-configuration
// references. The key is propagated to every descendant namespace.
func WithSubConfigKey(key string) Option {
	return func(opts *Options) {
		opts.SubConfigKey = key
	}
}

// WithLoader sets the loader used to resolve configuration references.
func WithLoader(l Loader) Option {
	return func(opts *Options) {
		opts.Loader = l
	}
}
