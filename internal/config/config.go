// Package config holds the builder-generator configuration.
//
// Values come from, in increasing precedence: defaults, the
// .builder-generator.yaml file, BUILDERGEN_* environment variables and
// command line flags bound by the CLI.
package config

// Config is the complete generator configuration.
type Config struct {
	Marker   string         `mapstructure:"marker"`
	Types    []string       `mapstructure:"types"`
	Keyword  string         `mapstructure:"keyword"`
	Optional OptionalConfig `mapstructure:"optional"`
	Multi    MultiConfig    `mapstructure:"multi"`
	Naming   NamingConfig   `mapstructure:"naming"`
	Output   OutputConfig   `mapstructure:"output"`
	Jobs     int            `mapstructure:"jobs"`
	Log      LogConfig      `mapstructure:"log"`
}

// OptionalConfig selects the shape of optional fields.
type OptionalConfig struct {
	// Wrapper is "*" or the name of a generic type such as "opt.Option".
	Wrapper string `mapstructure:"wrapper"`
	// Some is the function wrapping a value, required for named wrappers.
	Some string `mapstructure:"some"`
}

// MultiConfig selects the container shape of multi-valued fields.
type MultiConfig struct {
	// Wrapper is "[]" or the name of a generic container type.
	Wrapper string `mapstructure:"wrapper"`
	// Append is the method appending one element in place, required for
	// named containers.
	Append string `mapstructure:"append"`
}

// NamingConfig names the generated declarations.
type NamingConfig struct {
	BuilderSuffix     string `mapstructure:"builder_suffix"`
	ConstructorPrefix string `mapstructure:"constructor_prefix"`
	FinalizeMethod    string `mapstructure:"finalize_method"`
	SlotPrefix        string `mapstructure:"slot_prefix"`
}

// OutputConfig controls the generated files.
type OutputConfig struct {
	File     string `mapstructure:"file"`
	Comments bool   `mapstructure:"comments"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}
