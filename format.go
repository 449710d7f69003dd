package yamlns

import (
	"fmt"
	"sort"
	"strings"
)

// Attributes returns a flattened view of the tree: a mapping from dotted
// fully-qualified path to leaf value. Sequences are kept as raw values and
// not descended into.
func (n *Namespace) Attributes() map[string]any {
	attributes := make(map[string]any)

	for _, key := range n.order {
		child, isNamespace := n.entries[key].(*Namespace)
		if !isNamespace {
			attributes[key] = n.entries[key]

			continue
		}

		for nestedKey, value := range child.Attributes() {
			attributes[key+"."+nestedKey] = value
		}
	}

	return attributes
}

// Format replaces every {dotted.key} placeholder in s with the textual
// representation of the corresponding attribute of this namespace.
// Replacement is a single exhaustive pass over all attributes in sorted key
// order, each applied to the result of the previous one; keys whose pass is
// already over are not revisited when a replacement introduces them.
func (n *Namespace) Format(s string) string {
	attributes := n.Attributes()

	keys := make([]string, 0, len(attributes))
	for key := range attributes {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		s = strings.ReplaceAll(s, "{"+key+"}", fmt.Sprintf("%v", attributes[key]))
	}

	return s
}

// FormatValue applies Format to a string value and, element-wise, to string
// and sequence elements of a sequence value. Any other value is returned
// unchanged.
func (n *Namespace) FormatValue(value any) any {
	switch typed := value.(type) {
	case string:
		return n.Format(typed)
	case []any:
		formatted := make([]any, len(typed))

		for i, element := range typed {
			switch element.(type) {
			case string, []any:
				formatted[i] = n.FormatValue(element)
			default:
				formatted[i] = element
			}
		}

		return formatted
	default:
		return value
	}
}

// FormatSelf rewrites every string and sequence leaf in place with its
// formatted value, then recurses into every nested namespace. A leaf is first
// formatted against the attribute view of the namespace FormatSelf was called
// on, then against the views of the nested namespaces along its path, so
// placeholders resolve relative to the nearest enclosing namespace:
//
//	nested:
//	  key: value
//	  key1: "{nested.key}"  # resolved by the outer pass
//	  key2: "{key}"         # resolved by the nested pass
//
// Formatting is a single pass per namespace; placeholders that expand to text
// containing further placeholders are not resolved transitively. Fails with
// ErrFrozen on a frozen tree.
func (n *Namespace) FormatSelf() error {
	attributes := n.Attributes()

	keys := make([]string, 0, len(attributes))
	for key := range attributes {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		switch value := attributes[key]; value.(type) {
		case string, []any:
			err := n.Set(key, n.FormatValue(value))
			if err != nil {
				return err
			}
		}
	}

	for _, key := range n.order {
		if child, isNamespace := n.entries[key].(*Namespace); isNamespace {
			err := child.FormatSelf()
			if err != nil {
				return err
			}
		}
	}

	return nil
}
