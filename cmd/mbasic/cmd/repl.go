package cmd

import (
	"os"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/mbasic/foundation/core/log"
	"github.com/msto63/mbasic/internal/tui/repl"
	"github.com/msto63/mbasic/pkg/core/logging"
)

var (
	replLogFile    string
	replHideTokens bool
)

var replCmd = &cobra.Command{
	Use:   "repl [datei]",
	Short: "Interaktiver Zeilenparser",
	Long: `Startet den interaktiven Zeilenparser.

Jede eingegebene Zeile wird sofort geparst; Tokens, Anweisungsbaum oder
Fehler erscheinen im Verlauf. Zeilen mit Nummer werden im Programm
gespeichert. Eine optionale Datei wird vorher geladen.

Befehle:
  LIST [von[-bis]]  Programm anzeigen
  NEW               Programm loeschen
  CHECK             Programm pruefen
  TOKENS            Token-Anzeige umschalten
  HELP              Hilfe
  EXIT              Beenden

Tastenkuerzel:
  Enter        Zeile parsen
  Up/Down      Eingabeverlauf
  PgUp/PgDn    Scrollen
  Esc/Ctrl+C   Beenden`,
	Args: cobra.MaximumNArgs(1),
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replLogFile, "log-file", "", "Logs in diese Datei schreiben (default: keine Logs)")
	replCmd.Flags().BoolVar(&replHideTokens, "no-tokens", false, "Tokens nicht anzeigen")
}

func runREPL(cmd *cobra.Command, args []string) error {
	// The alternate screen owns the terminal, so logs go to a file or nowhere
	logger = mdwlog.NewDiscard()
	if replLogFile != "" {
		f, err := os.OpenFile(replLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()

		logger = logging.NewLogger(logging.LoggerConfig{
			Name:    "mbasic-repl",
			Level:   appConfig.General.LogLevel,
			Format:  appConfig.General.LogFormat,
			Verbose: verbose,
			Output:  f,
		})
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	cfg := repl.DefaultConfig()
	cfg.Engine = engine
	cfg.Logger = logger
	cfg.ShowTokens = !replHideTokens

	if len(args) == 1 {
		prog, _, err := loadProgram(cmd, engine, args)
		if err != nil {
			return err
		}
		cfg.Program = prog
	}

	return repl.Run(cfg)
}
