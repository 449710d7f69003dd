// Package loader resolves configuration references into nested mappings.
//
// A reference is one of:
//   - a map[string]any, returned as is after validation
//   - a bare file path, read from the filesystem as a YAML document
//   - "package@relative/path.yaml", matched against the resources of a
//     registered package bundle
//
// # Package bundles
//
// A bundle is an fs.FS (typically an embed.FS) registered under a logical
// name:
//
//	//go:embed configs
//	var configs embed.FS
//
//	loader.Register("myapp", configs)
//
// A reference like "myapp@db.yaml" is matched by suffix against every bundle
// resource carrying the reference's filename extension, so the path may be
// abbreviated as long as it stays unique. Zero matches fail with ErrNotFound,
// several matches with ErrAmbiguous.
package loader
