package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/specialistvlad/puzzlegrid/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envDefaults supplies flag defaults from the environment.
type envDefaults struct {
	LogLevel  string `env:"PUZZLEGRID_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"PUZZLEGRID_LOG_FORMAT" envDefault:"text"`
}

const longHelp = `puzzlegrid solves daily puzzles and prints two answers per puzzle.

PUZZLE is a name such as "day3", "3" or "03". Without any PUZZLE every
registered puzzle runs. Without --input each part reads its embedded sample.

Examples:
  puzzlegrid 1 --input inputs/day1.txt
  puzzlegrid --sample
  puzzlegrid --manifest run.hcl`

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid environment: %v", err)}
	}

	var (
		config       *app.Config
		inputPath    string
		manifestPath string
		sample       bool
		logLevel     string
		logFormat    string
	)

	cmd := &cobra.Command{
		Use:           "puzzlegrid [flags] [PUZZLE...]",
		Short:         "Solve daily puzzles from text input",
		Long:          longHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			slog.Debug("Arguments parsed successfully.", "puzzles", positional)
			cfg, err := app.NewConfig(app.Config{
				Puzzles:      positional,
				InputPath:    inputPath,
				ManifestPath: manifestPath,
				Sample:       sample,
				LogLevel:     strings.ToLower(logLevel),
				LogFormat:    strings.ToLower(logFormat),
			})
			if err != nil {
				return err
			}
			config = cfg
			return nil
		},
	}
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringVarP(&inputPath, "input", "i", "", "Input file for a single puzzle.")
	flags.StringVarP(&manifestPath, "manifest", "m", "", "Run manifest: an .hcl/.yaml file or a directory of them.")
	flags.BoolVar(&sample, "sample", false, "Solve the embedded samples and verify the known answers.")
	flags.StringVar(&logLevel, "log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&logFormat, "log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if config == nil {
		// Help was requested; cobra already printed it.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
