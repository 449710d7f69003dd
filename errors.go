package yamlns

import "errors"

// ErrFrozen is returned when a key is added, overwritten or deleted on a
// namespace that is not modifiable.
var ErrFrozen = errors.New("namespace is frozen")

// ErrKeyNotFound is returned when a read or delete addresses an absent key or path.
var ErrKeyNotFound = errors.New("key not found")

// ErrNotNamespace is returned when a dotted path routes through an entry
// whose value is not a namespace.
var ErrNotNamespace = errors.New("value is not a namespace")

// ErrAmbiguousSubConfig is returned when a sub-configuration file has two or
// more top-level keys and none of them matches the requested entry name.
var ErrAmbiguousSubConfig = errors.New("ambiguous sub-configuration")
