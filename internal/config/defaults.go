package config

import (
	"github.com/spf13/viper"

	"builder-generator/internal/analyze"
	"builder-generator/internal/typeshape"
)

// EnvPrefix prefixes environment variables, e.g. BUILDERGEN_LOG_LEVEL.
const EnvPrefix = "BUILDERGEN"

// FileName is the configuration file looked up in the working directory.
const FileName = ".builder-generator.yaml"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("marker", analyze.DefaultMarker)
	v.SetDefault("types", []string{})
	v.SetDefault("keyword", "builder")

	v.SetDefault("optional.wrapper", typeshape.PointerWrapper)
	v.SetDefault("optional.some", "")
	v.SetDefault("multi.wrapper", typeshape.SliceWrapper)
	v.SetDefault("multi.append", "")

	v.SetDefault("naming.builder_suffix", "Builder")
	v.SetDefault("naming.constructor_prefix", "New")
	v.SetDefault("naming.finalize_method", "Build")
	v.SetDefault("naming.slot_prefix", "field")

	v.SetDefault("output.file", "builders_gen.go")
	v.SetDefault("output.comments", true)

	v.SetDefault("jobs", 0) // 0 means GOMAXPROCS

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)
}
