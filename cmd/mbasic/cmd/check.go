package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mbasic/internal/render"
)

var checkCmd = &cobra.Command{
	Use:   "check [datei|-]",
	Short: "Programm pruefen",
	Long: `Parst das Programm und prueft zusaetzlich:

  - Anzahl der Argumente bei Funktionsaufrufen
  - GOTO-Ziele, die als Zahl angegeben sind und nicht existieren

Beispiele:
  mbasic check programm.bas
  mbasic --config configs/mbasic.toml check programm.bas`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	prog, report, err := loadProgram(cmd, engine, args)
	if err != nil {
		return err
	}

	problems := engine.CheckProgram(prog)
	for _, problem := range problems {
		fmt.Fprint(os.Stderr, render.Error(problem, "", styled()))
	}

	fmt.Printf("%d Zeilen, %d Syntaxfehler, %d Probleme (%s)\n",
		report.Parsed, len(report.Errors), len(problems), report.Duration)

	if !report.OK() || len(problems) > 0 {
		return errSourceErrors
	}
	return nil
}
