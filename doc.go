// Package yamlns provides hierarchical configuration namespaces built from
// YAML documents or plain nested mappings.
//
// A Namespace is a tree: every entry value is a scalar, a sequence, or a
// nested *Namespace. Values are addressed with dotted paths, so for a file
//
//	name: Name
//	nested:
//	  email: name@host.domain
//
// the configuration is read as
//
//	cfg, err := yamlns.New("config.yaml")
//	cfg.Get("name")         // "Name"
//	cfg.Get("nested.email") // "name@host.domain"
//
// # Dotted keys
//
// Keys containing periods are never stored literally. Updating a namespace
// with {"a.b.c": 1} creates the intermediate namespaces a and a.b and stores
// 1 under c, merging into whatever already exists along the path.
//
// # Sub-configurations
//
// A mapping value carrying the sub-config key (default "yaml") delegates to
// an externally stored configuration. The remaining keys of the mapping act
// as local overrides layered on top of the loaded values:
//
//	database:
//	  yaml: shared@defaults.yaml
//	  pool_size: 32
//
// loads defaults.yaml, selects its "database" section (or its single
// top-level section), and overrides pool_size. References are resolved by a
// Loader; the default one (package loader) reads bare file paths and
// "package@relative/path" package resources.
//
// # Freezing
//
// Freeze marks a namespace and its descendants read-only; any add, overwrite
// or delete then fails with ErrFrozen until Unfreeze is called.
//
// # Interpolation
//
// Format replaces {dotted.key} placeholders in a string with values from the
// namespace. FormatSelf rewrites every string entry in place, resolving
// placeholders against the nearest enclosing namespace first. Interpolation
// is a single pass: placeholders whose replacement text itself contains
// placeholders are not resolved transitively.
//
// Namespaces are not safe for concurrent mutation; callers sharing a tree
// across goroutines must synchronize externally.
package yamlns
