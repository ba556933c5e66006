// Package conf implements the configuration artifact lifecycle. Each
// managed file is described by a File definition (location, codec, desired
// content, correctness check) and reconciled idempotently against the
// filesystem: created when missing, augmented additively when structured
// content lacks required keys, left alone when already correct. Codecs
// carry the per-format serialization rules (TOML, YAML, JSON, plain text,
// empty markers).
package conf
