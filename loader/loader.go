package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrNotMapping is returned when a reference does not resolve to a mapping.
var ErrNotMapping = errors.New("configuration is not a mapping")

// ErrMalformedReference is returned when a string reference contains more
// than one "@" separator.
var ErrMalformedReference = errors.New("malformed configuration reference")

// ErrNotFound is returned when a package reference matches no resource.
var ErrNotFound = errors.New("configuration file not found")

// ErrAmbiguous is returned when a package reference matches more than one resource.
var ErrAmbiguous = errors.New("configuration reference is ambiguous")

// ErrPathIsDirectory is returned when a file reference points to a directory.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Loader resolves configuration references into nested mappings.
// It implements the yamlns.Loader interface.
type Loader struct {
	registry *Registry
}

// New creates a loader backed by the default package registry.
func New() *Loader {
	return NewWithRegistry(DefaultRegistry)
}

// NewWithRegistry creates a loader backed by the given package registry.
func NewWithRegistry(registry *Registry) *Loader {
	return &Loader{registry: registry}
}

// Load resolves the given configuration reference into a mapping.
// Mappings pass through unchanged; strings are resolved as file paths or
// "package@relative/path" package resources; anything else fails with
// ErrNotMapping.
func (l *Loader) Load(config any) (map[string]any, error) {
	switch reference := config.(type) {
	case map[string]any:
		return reference, nil
	case string:
		return l.loadReference(reference)
	default:
		return nil, fmt.Errorf("configuration of type %T: %w", config, ErrNotMapping)
	}
}

func (l *Loader) loadReference(reference string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)

	parts := strings.Split(reference, "@")

	switch len(parts) {
	case 1:
		data, err = readFile(strings.TrimSpace(parts[0]))
	case 2:
		data, err = l.readResource(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	default:
		return nil, fmt.Errorf("reference %q: %w", reference, ErrMalformedReference)
	}

	if err != nil {
		return nil, err
	}

	return decode(data)
}

// readResource locates a resource within a registered package bundle by
// suffix matching and reads it.
func (l *Loader) readResource(pkg, resource string) ([]byte, error) {
	files, err := l.registry.List(pkg, []string{path.Ext(resource)})
	if err != nil {
		return nil, err
	}

	var candidates []string

	for _, file := range files {
		if strings.HasSuffix(file, resource) {
			candidates = append(candidates, file)
		}
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf(
			"no resource matching %q in package %q (available: %v): %w",
			resource, pkg, files, ErrNotFound,
		)
	}

	if len(candidates) > 1 {
		return nil, fmt.Errorf(
			"resource %q matches %v in package %q: %w",
			resource, candidates, pkg, ErrAmbiguous,
		)
	}

	slog.Debug("resolved package resource",
		slog.String("package", pkg),
		slog.String("resource", resource),
		slog.String("file", candidates[0]),
	)

	fsys, err := l.registry.bundle(pkg)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, candidates[0])
	if err != nil {
		return nil, fmt.Errorf("reading resource %q from package %q: %w", candidates[0], pkg, err)
	}

	return data, nil
}

func readFile(fpath string) ([]byte, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return data, nil
}

// decode unmarshals a YAML document and validates that its top level is a mapping.
func decode(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty document: %w", ErrNotMapping)
	}

	var document any

	err := yaml.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	mapping, isMapping := document.(map[string]any)
	if !isMapping {
		return nil, fmt.Errorf("document of type %T: %w", document, ErrNotMapping)
	}

	return mapping, nil
}
