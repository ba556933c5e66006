package pluginspec

// Manifest is the parsed form of a pyforge-plugin.yaml file shipped inside
// a dependency package. It declares the configuration artifacts and
// builders the package contributes to any project depending on it.
type Manifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Requires is an optional semver constraint on the PyForge version,
	// e.g. ">=0.2.0". Incompatible plugins are skipped with a load error.
	Requires string `yaml:"requires,omitempty"`

	// Dependencies names further plugin packages to walk. Discovery
	// recurses into them with lower precedence than this package.
	Dependencies []string `yaml:"dependencies,omitempty"`

	ConfigFiles []ConfigFileSpec `yaml:"config_files,omitempty"`
	Builders    []BuilderSpec    `yaml:"builders,omitempty"`
}

// ConfigFileSpec declares one managed artifact. Exactly one of Content
// (structured formats) or Lines (text formats) carries the desired payload;
// marker files carry neither.
type ConfigFileSpec struct {
	Kind   string `yaml:"kind"`
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // toml, yaml, json, text, markdown, marker

	Content map[string]any `yaml:"content,omitempty"`
	Lines   []string       `yaml:"lines,omitempty"`

	// Check overrides the format's default correctness predicate:
	// parses, superset, nonempty, exists.
	Check string `yaml:"check,omitempty"`
}

// BuilderSpec declares one static-files builder: each entry of Files is
// written verbatim into the build staging directory.
type BuilderSpec struct {
	Name  string            `yaml:"name"`
	Files map[string]string `yaml:"files"`
}
