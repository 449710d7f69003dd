// Package nsfx provides an Fx module that supplies configuration namespaces
// to a DI container.
package nsfx

import (
	"errors"
	"fmt"

	"github.com/0xalexb/yamlns"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// NewModule creates an Fx module that provides a *yamlns.Namespace built
// from the given configuration (a mapping or a loadable reference).
// The name is used as both the module name and the DI named tag, so several
// namespaces can coexist in one container. Construction happens lazily when
// the container first resolves the namespace.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, config any, opts ...yamlns.Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (*yamlns.Namespace, error) {
					namespace, err := yamlns.New(config, opts...)
					if err != nil {
						return nil, fmt.Errorf("building namespace %q: %w", name, err)
					}

					return namespace, nil
				},
				fx.ResultTags(fmt.Sprintf(`name:%q`, name)),
			),
		),
	)
}
