package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwprogram "github.com/msto63/mbasic/foundation/basic/program"
)

var (
	listFrom int
	listTo   int
)

var listCmd = &cobra.Command{
	Use:   "list [datei|-]",
	Short: "Programm sortiert ausgeben",
	Long: `Gibt das Programm nach Zeilennummern sortiert in kanonischer Form aus.
Fehlerhafte Zeilen werden gemeldet und ausgelassen.

Beispiele:
  mbasic list programm.bas
  mbasic list --from 100 --to 200 programm.bas`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listFrom, "from", 0, "Erste Zeilennummer")
	listCmd.Flags().IntVar(&listTo, "to", -1, "Letzte Zeilennummer (-1: bis zum Ende)")
}

func runList(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	prog, report, err := loadProgram(cmd, engine, args)
	if err != nil {
		return err
	}

	prog.Range(listFrom, listTo, func(line mdwprogram.Line) bool {
		fmt.Println(line.String())
		return true
	})

	if !report.OK() {
		return errSourceErrors
	}
	return nil
}
