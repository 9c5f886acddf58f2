package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"builder-generator/internal/config"
	"builder-generator/internal/driver"
	"builder-generator/internal/logging"
)

// app is the state shared by all commands.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer

	configPath     string
	colorMode      string
	maxDiagnostics int
	diagFormat     string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.NewViper(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "builder-generator",
		Short: "Generate builders for Go structs",
		Long: `builder-generator writes a builder type for every struct marked with
//builder:generate. Pointer fields are optional, slice fields annotated with
` + "`builder:\"each=name\"`" + ` get one accumulator per name, and every other
field must be set before Build.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default "+config.FileName+" in the working directory)")
	flags.StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")
	flags.IntVar(&a.maxDiagnostics, "max-diagnostics", 100, "maximum number of diagnostics to show (0 = all)")
	flags.StringVar(&a.diagFormat, "diagnostics", "text", "diagnostics format (text|json)")
	flags.String("log-level", "warn", "log level (debug|info|warn|error)")
	flags.Bool("log-json", false, "log as JSON")
	flags.Int("jobs", 0, "max records processed in parallel (0 = GOMAXPROCS)")
	flags.StringSlice("types", nil, "additional type names to generate builders for")

	for key, name := range map[string]string{
		"log.level": "log-level",
		"log.json":  "log-json",
		"jobs":      "jobs",
		"types":     "types",
	} {
		// Lookup cannot fail: the flags are declared above.
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(newGenCmd(a), newCheckCmd(a), newPlanCmd(a))

	return root
}

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	switch a.colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
	default:
		return errors.Newf("unknown --color value %q (want auto, on or off)", a.colorMode)
	}

	if a.diagFormat != "text" && a.diagFormat != "json" {
		return errors.Newf("unknown --diagnostics value %q (want text or json)", a.diagFormat)
	}

	cfg, err := config.Load(a.v, a.configPath, "")
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		return err
	}

	logging.SetLogger(logger)
	a.cfg = cfg

	return nil
}

func (a *app) driver() (*driver.Driver, error) {
	return driver.New(a.cfg, "")
}

// patterns defaults to every package below the working directory.
func patterns(args []string) []string {
	if len(args) == 0 {
		return []string{"./..."}
	}

	return args
}
