// Package logging builds slog loggers from configuration values.
//
// Loggers are constructed either from an explicit Config or straight from a
// configuration namespace, where the "level" and "format" entries select the
// verbosity and the handler encoding:
//
//	logging:
//	  level: debug
//	  format: text
//
//	ns, _ := cfg.Child("logging")
//	logger := logging.FromNamespace(ns, os.Stderr)
//
// Unknown or missing values fall back to level INFO and JSON encoding.
package logging
