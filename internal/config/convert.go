package config

import (
	"builder-generator/internal/analyze"
	"builder-generator/internal/emit"
	"builder-generator/internal/gen"
	"builder-generator/internal/plan"
)

// LoaderOptions returns the record selection options.
func (c *Config) LoaderOptions(dir string) analyze.Options {
	return analyze.Options{Marker: c.Marker, Types: c.Types, Dir: dir}
}

// Classifier returns the field classifier.
func (c *Config) Classifier() plan.Classifier {
	return plan.Classifier{
		Keyword:         c.Keyword,
		OptionalWrapper: c.Optional.Wrapper,
		MultiWrapper:    c.Multi.Wrapper,
	}
}

// EmitOptions returns the naming of emitted declarations.
func (c *Config) EmitOptions() emit.Options {
	return emit.Options{
		BuilderSuffix:     c.Naming.BuilderSuffix,
		ConstructorPrefix: c.Naming.ConstructorPrefix,
		FinalizeName:      c.Naming.FinalizeMethod,
		SlotPrefix:        c.Naming.SlotPrefix,
	}
}

// GeneratorConfig returns the renderer configuration.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	return gen.GeneratorConfig{
		OutputFile:       c.Output.File,
		OptionalWrapper:  c.Optional.Wrapper,
		MultiWrapper:     c.Multi.Wrapper,
		OptionalSome:     c.Optional.Some,
		MultiAppend:      c.Multi.Append,
		GenerateComments: c.Output.Comments,
	}
}
