package conf

import "fmt"

// MalformedConfigError reports a file that exists on disk but cannot be
// parsed under its declared format. It is never auto-repaired; callers
// decide whether to surface or skip the artifact.
type MalformedConfigError struct {
	Path string
	Err  error
}

func (e *MalformedConfigError) Error() string {
	return fmt.Sprintf("malformed config file %s: %v", e.Path, e.Err)
}

func (e *MalformedConfigError) Unwrap() error { return e.Err }

// TypeMismatchError reports a payload whose shape is incompatible with the
// structural requirement of the target format (e.g., a non-mapping payload
// for a format that requires a table at the document root).
type TypeMismatchError struct {
	Format string
	Want   string
	Got    any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s payload must be %s, got %T", e.Format, e.Want, e.Got)
}

// ValidationError reports a format-specific invariant violation, such as a
// non-empty payload written to an empty-marker file.
type ValidationError struct {
	Path string
	Msg  string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}
