package cmd

import (
	"context"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mbasic/foundation/core/error"
	mdwlog "github.com/msto63/mbasic/foundation/core/log"
	"github.com/msto63/mbasic/pkg/core/config"
	"github.com/msto63/mbasic/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
	plain     bool

	appConfig *config.Config
	logger    *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mbasic",
	Short: "mBASIC - Parser fuer zeilennummeriertes BASIC",
	Long: `mBASIC zerlegt zeilennummerierte BASIC-Programme in Tokens und
Anweisungsbaeume. Programme werden nicht ausgefuehrt.

Befehle:
  lex        - Tokens einer Datei oder Zeile anzeigen
  parse      - Anweisungen parsen (text, tree, yaml)
  check      - Programm parsen und semantisch pruefen
  list       - Programm sortiert in kanonischer Form ausgeben
  functions  - Bekannte Funktionen anzeigen
  repl       - Interaktiver Zeilenparser`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei, TOML oder YAML (default: $MBASIC_CONFIG oder ./configs/mbasic.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log-Format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Ausgabe ohne Farben")
}

// setup loads the configuration and builds the logger for every command
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if logFormat != "" {
		cfg.General.LogFormat = logFormat
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	appConfig = cfg

	logger = logging.NewLogger(logging.LoggerConfig{
		Name:    "mbasic",
		Level:   cfg.General.LogLevel,
		Format:  cfg.General.LogFormat,
		Verbose: verbose,
	})
	mdwlog.SetDefault(logger)
	return nil
}

// loadConfig uses --config, then MBASIC_CONFIG and the default locations,
// then built-in defaults
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	cfg, err := config.LoadFromEnv()
	if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		return config.Default(), nil
	}
	return cfg, err
}
