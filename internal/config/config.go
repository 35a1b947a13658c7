package config

// Profile describes which check categories a build should compile in.
// It is turned into a -tags value for go build / go test.
//
// Example:
//
//	version: 1
//	name: fuzzing
//	debug: true
//	disable: [filepath]
type Profile struct {
	// Version is the profile format version (optional, currently always 1)
	Version int `yaml:"version,omitempty"`

	// Name is a free-form label shown by the CLI
	Name string `yaml:"name,omitempty"`

	// Debug turns every category on via the debug tag
	Debug bool `yaml:"debug"`

	// Enable lists categories to compile in individually
	Enable []string `yaml:"enable"`

	// Disable lists categories to keep out of a debug build
	Disable []string `yaml:"disable"`
}

// CurrentVersion is the newest profile format this package understands.
const CurrentVersion = 1
