package yamlns

import (
	"fmt"
	"sort"
	"strings"
)

// Update merges the given configuration (a nested mapping or a loadable
// reference) into this namespace. Dotted keys are decomposed into nested
// namespaces; mapping values go through sub-configuration delegation;
// sub-namespaces reassigned at the same key are replaced wholesale.
//
// Keys of the resolved mapping are processed in sorted order, so repeated
// updates with the same input produce identical trees. Update has no
// rollback: on error the namespace may be partially modified. Callers that
// need atomicity should Clone first and discard the clone on failure.
func (n *Namespace) Update(config any) error {
	if !n.modifiable {
		return fmt.Errorf("update: %w", ErrFrozen)
	}

	loaded, err := n.loader.Load(config)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(loaded))
	for name := range loaded {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		err := n.apply(name, loaded[name])
		if err != nil {
			return err
		}
	}

	return nil
}

// apply merges a single (name, value) pair into the namespace.
func (n *Namespace) apply(name string, value any) error {
	if !n.modifiable {
		return fmt.Errorf("updating key %q: %w", name, ErrFrozen)
	}

	// A dotted name targets a nested namespace: route through the child
	// named by the first segment, creating it when absent.
	if first, rest, nested := strings.Cut(name, "."); nested {
		child, err := n.Child(first)
		if err != nil {
			return err
		}

		return child.apply(rest, value)
	}

	switch typed := value.(type) {
	case map[string]any:
		sub, err := n.resolveSubConfig(name, typed)
		if err != nil {
			return err
		}

		n.put(name, sub)
	case []any:
		seq := make([]any, len(typed))

		for i, element := range typed {
			mapping, isMapping := element.(map[string]any)
			if !isMapping {
				seq[i] = element

				continue
			}

			sub, err := n.resolveSubConfig(name, mapping)
			if err != nil {
				return err
			}

			seq[i] = sub
		}

		n.put(name, seq)
	default:
		n.put(name, value)
	}

	return nil
}

// resolveSubConfig turns a mapping value assigned to name into a namespace.
//
// When the mapping carries the sub-config key, that entry is treated as a
// reference to an external configuration: the reference is loaded, the entry
// matching name (or the single top-level entry) is selected, and the
// remaining keys of the mapping are applied on top as local overrides.
// A loaded configuration with several top-level keys and none matching name
// fails with ErrAmbiguousSubConfig.
func (n *Namespace) resolveSubConfig(name string, value map[string]any) (*Namespace, error) {
	sub := n.newChild()

	err := sub.Update(value)
	if err != nil {
		return nil, err
	}

	reference, delegated := sub.entries[n.subConfigKey]
	if !delegated {
		return sub, nil
	}

	loaded := n.newChild()

	err = loaded.Update(reference)
	if err != nil {
		return nil, fmt.Errorf("sub-configuration %v: %w", reference, err)
	}

	resolved, err := loaded.selectSubConfig(name, reference)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]any, len(value))

	for key, override := range value {
		if key != n.subConfigKey {
			overrides[key] = override
		}
	}

	if len(overrides) > 0 {
		err = resolved.Update(overrides)
		if err != nil {
			return nil, err
		}
	}

	return resolved, nil
}

// selectSubConfig picks the entry of a loaded sub-configuration that backs
// the entry called name: the key matching name when present, otherwise the
// single top-level key.
func (n *Namespace) selectSubConfig(name string, reference any) (*Namespace, error) {
	key := name
	if !n.Has(key) {
		if len(n.order) != 1 {
			return nil, fmt.Errorf(
				"sub-configuration %v has keys %v, none matching %q: %w",
				reference, n.order, name, ErrAmbiguousSubConfig,
			)
		}

		key = n.order[0]
	}

	resolved, isNamespace := n.entries[key].(*Namespace)
	if !isNamespace {
		return nil, fmt.Errorf("sub-configuration %v, key %q: %w", reference, key, ErrNotNamespace)
	}

	return resolved, nil
}
