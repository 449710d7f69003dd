package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sort"
)

// ErrUnknownPackage is returned when a package name has not been registered.
var ErrUnknownPackage = errors.New("unknown package")

// DefaultExtensions lists the filename extensions treated as configuration
// files when no explicit set is given.
//
//nolint:gochecknoglobals // shared default, mirrors the package registry below.
var DefaultExtensions = []string{".yaml", ".yml"}

// Registry maps logical package names to resource bundles. A bundle is any
// fs.FS, typically an embed.FS holding configuration files.
type Registry struct {
	packages map[string]fs.FS
}

// NewRegistry creates an empty package registry.
func NewRegistry() *Registry {
	return &Registry{packages: make(map[string]fs.FS)}
}

// Register adds (or replaces) the bundle for the given package name.
func (r *Registry) Register(name string, fsys fs.FS) {
	r.packages[name] = fsys
}

// List enumerates every resource of the named package whose filename
// extension is in extensions, as sorted slash-separated relative paths.
// Passing no extensions lists resources with the default ones.
func (r *Registry) List(pkg string, extensions []string) ([]string, error) {
	fsys, err := r.bundle(pkg)
	if err != nil {
		return nil, err
	}

	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	var files []string

	err = fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !entry.IsDir() && slices.Contains(extensions, path.Ext(p)) {
			files = append(files, p)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing package %q: %w", pkg, err)
	}

	sort.Strings(files)

	return files, nil
}

func (r *Registry) bundle(pkg string) (fs.FS, error) {
	fsys, registered := r.packages[pkg]
	if !registered {
		return nil, fmt.Errorf("package %q: %w", pkg, ErrUnknownPackage)
	}

	return fsys, nil
}

// DefaultRegistry is the registry used by loaders created with New and by
// the package-level Register and List functions.
//
//nolint:gochecknoglobals // process-wide registry, analogous to database/sql drivers.
var DefaultRegistry = NewRegistry()

// Register adds a bundle to the default registry.
func Register(name string, fsys fs.FS) {
	DefaultRegistry.Register(name, fsys)
}

// List enumerates resources of a package registered in the default registry.
func List(pkg string, extensions []string) ([]string, error) {
	return DefaultRegistry.List(pkg, extensions)
}
