package yamlns

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultIndent is the indentation width used by String and Save callers
// that do not specify one.
const DefaultIndent = 4

// Namespace is a hierarchical configuration tree. Entry values are scalars,
// sequences ([]any) or nested *Namespace nodes. Nodes are never shared
// between two parents; mutate a namespace only through its methods.
type Namespace struct {
	entries      map[string]any
	order        []string
	modifiable   bool
	subConfigKey string
	loader       Loader
}

// New builds a namespace from a nested mapping or a loadable reference
// (a file path or a "package@relative/path" resource, resolved by the
// configured Loader). The tree is built mutable; when WithModifiable(false)
// is given, the finished tree is frozen recursively.
func New(config any, opts ...Option) (*Namespace, error) {
	options := defaultOptions()

	for _, apply := range opts {
		apply(&options)
	}

	namespace := &Namespace{
		entries:      make(map[string]any),
		modifiable:   true,
		subConfigKey: options.SubConfigKey,
		loader:       options.Loader,
	}

	err := namespace.Update(config)
	if err != nil {
		return nil, err
	}

	if !options.Modifiable {
		namespace.Freeze()
	}

	return namespace, nil
}

// newChild creates an empty namespace carrying this node's settings.
func (n *Namespace) newChild() *Namespace {
	return &Namespace{
		entries:      make(map[string]any),
		modifiable:   n.modifiable,
		subConfigKey: n.subConfigKey,
		loader:       n.loader,
	}
}

// put stores value under key, keeping insertion order for new keys.
func (n *Namespace) put(key string, value any) {
	if _, exists := n.entries[key]; !exists {
		n.order = append(n.order, key)
	}

	n.entries[key] = value
}

// Modifiable reports whether this node accepts mutations.
func (n *Namespace) Modifiable() bool {
	return n.modifiable
}

// SubConfigKey returns the entry name that marks sub-configuration references.
func (n *Namespace) SubConfigKey() string {
	return n.subConfigKey
}

// Keys returns the top-level entry names in insertion order.
func (n *Namespace) Keys() []string {
	keys := make([]string, len(n.order))
	copy(keys, n.order)

	return keys
}

// Has reports whether a top-level entry named key exists.
func (n *Namespace) Has(key string) bool {
	_, exists := n.entries[key]

	return exists
}

// Get returns the value stored at the given dotted path.
// It returns ErrKeyNotFound for absent segments and ErrNotNamespace when an
// intermediate segment resolves to a non-namespace value.
func (n *Namespace) Get(path string) (any, error) {
	first, rest, nested := strings.Cut(path, ".")

	value, exists := n.entries[first]
	if !exists {
		return nil, fmt.Errorf("key %q: %w", first, ErrKeyNotFound)
	}

	if !nested {
		return value, nil
	}

	child, isNamespace := value.(*Namespace)
	if !isNamespace {
		return nil, fmt.Errorf("key %q: %w", first, ErrNotNamespace)
	}

	return child.Get(rest)
}

// Child returns the namespace stored under key. When the key is absent and
// this node is modifiable, an empty child namespace is created, attached and
// returned; on a frozen node the call fails with ErrFrozen.
func (n *Namespace) Child(key string) (*Namespace, error) {
	if value, exists := n.entries[key]; exists {
		child, isNamespace := value.(*Namespace)
		if !isNamespace {
			return nil, fmt.Errorf("key %q: %w", key, ErrNotNamespace)
		}

		return child, nil
	}

	if !n.modifiable {
		return nil, fmt.Errorf("adding key %q: %w", key, ErrFrozen)
	}

	child := n.newChild()
	n.put(key, child)

	return child, nil
}

// Set stores value at the given dotted path, creating intermediate
// namespaces as needed. A map[string]any value is converted to a namespace;
// sub-configuration delegation is not applied to the value itself.
func (n *Namespace) Set(path string, value any) error {
	if !n.modifiable {
		return fmt.Errorf("setting key %q: %w", path, ErrFrozen)
	}

	first, rest, nested := strings.Cut(path, ".")
	if nested {
		child, err := n.Child(first)
		if err != nil {
			return err
		}

		return child.Set(rest, value)
	}

	if mapping, isMapping := value.(map[string]any); isMapping {
		sub := n.newChild()

		err := sub.Update(mapping)
		if err != nil {
			return err
		}

		value = sub
	}

	n.put(path, value)

	return nil
}

// Add loads the given configuration (a mapping or a loadable reference) into
// a new sub-namespace stored under key.
func (n *Namespace) Add(key string, config any) error {
	if !n.modifiable {
		return fmt.Errorf("adding key %q: %w", key, ErrFrozen)
	}

	sub := n.newChild()

	err := sub.Update(config)
	if err != nil {
		return err
	}

	n.put(key, sub)

	return nil
}

// Delete removes the entry at the given dotted path.
// It returns ErrFrozen on a frozen node and ErrKeyNotFound when the path or
// one of its intermediate segments does not exist.
func (n *Namespace) Delete(path string) error {
	if !n.modifiable {
		return fmt.Errorf("deleting key %q: %w", path, ErrFrozen)
	}

	first, rest, nested := strings.Cut(path, ".")
	if nested {
		value, exists := n.entries[first]
		if !exists {
			return fmt.Errorf("key %q: %w", first, ErrKeyNotFound)
		}

		child, isNamespace := value.(*Namespace)
		if !isNamespace {
			return fmt.Errorf("key %q: %w", first, ErrNotNamespace)
		}

		return child.Delete(rest)
	}

	if _, exists := n.entries[path]; !exists {
		return fmt.Errorf("key %q: %w", path, ErrKeyNotFound)
	}

	delete(n.entries, path)

	for i, key := range n.order {
		if key == path {
			n.order = append(n.order[:i], n.order[i+1:]...)

			break
		}
	}

	return nil
}

// Freeze marks this namespace and, depth-first, every directly nested
// namespace as read-only. Namespaces stored inside sequence values are not
// traversed and stay independently modifiable.
func (n *Namespace) Freeze() {
	for _, value := range n.entries {
		if child, isNamespace := value.(*Namespace); isNamespace {
			child.Freeze()
		}
	}

	n.modifiable = false
}

// Unfreeze restores mutability on this namespace and every directly nested
// namespace. Like Freeze, it does not traverse into sequence values.
func (n *Namespace) Unfreeze() {
	n.modifiable = true

	for _, value := range n.entries {
		if child, isNamespace := value.(*Namespace); isNamespace {
			child.Unfreeze()
		}
	}
}

// Clone returns a fully independent deep copy of this namespace. The tree is
// flattened to a plain nested mapping and rebuilt, so descendant
// modifiability is re-derived from this node's flag.
func (n *Namespace) Clone() (*Namespace, error) {
	return New(
		n.Map(),
		WithModifiable(n.modifiable),
		WithSubConfigKey(n.subConfigKey),
		WithLoader(n.loader),
	)
}

// Map returns the configuration as a plain nested structure: nested
// namespaces become map[string]any, including namespaces stored inside
// sequences.
func (n *Namespace) Map() map[string]any {
	out := make(map[string]any, len(n.entries))

	for key, value := range n.entries {
		out[key] = plain(value)
	}

	return out
}

func plain(value any) any {
	switch typed := value.(type) {
	case *Namespace:
		return typed.Map()
	case []any:
		seq := make([]any, len(typed))
		for i, element := range typed {
			seq[i] = plain(element)
		}

		return seq
	default:
		return value
	}
}

// Dump renders the configuration as a YAML document with the given
// indentation width. Entries appear in insertion order.
func (n *Namespace) Dump(indent int) (string, error) {
	data, err := yaml.MarshalWithOptions(n.mapSlice(), yaml.Indent(indent))
	if err != nil {
		return "", fmt.Errorf("marshal error: %w", err)
	}

	return string(data), nil
}

// Save writes the configuration to a YAML file with the given indentation width.
func (n *Namespace) Save(path string, indent int) error {
	dump, err := n.Dump(indent)
	if err != nil {
		return err
	}

	cleanPath := filepath.Clean(path)

	err = os.WriteFile(cleanPath, []byte(dump), 0o600)
	if err != nil {
		return fmt.Errorf("writing file %q: %w", cleanPath, err)
	}

	return nil
}

// String renders the configuration as YAML with the default indentation.
func (n *Namespace) String() string {
	dump, err := n.Dump(DefaultIndent)
	if err != nil {
		return fmt.Sprintf("namespace (marshal error: %v)", err)
	}

	return dump
}

// mapSlice converts the tree to an ordered goccy MapSlice so dumps preserve
// insertion order.
func (n *Namespace) mapSlice() yaml.MapSlice {
	out := make(yaml.MapSlice, 0, len(n.order))

	for _, key := range n.order {
		out = append(out, yaml.MapItem{Key: key, Value: orderedValue(n.entries[key])})
	}

	return out
}

func orderedValue(value any) any {
	switch typed := value.(type) {
	case *Namespace:
		return typed.mapSlice()
	case []any:
		seq := make([]any, len(typed))
		for i, element := range typed {
			seq[i] = orderedValue(element)
		}

		return seq
	default:
		return value
	}
}
