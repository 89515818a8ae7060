package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwstringx "github.com/msto63/mbasic/foundation/utils/stringx"
	"github.com/msto63/mbasic/internal/render"
)

var lexLine string

var lexCmd = &cobra.Command{
	Use:   "lex [datei|-]",
	Short: "Tokens anzeigen",
	Long: `Zerlegt jede Zeile in Tokens und zeigt Art und Wert.

Beispiele:
  mbasic lex programm.bas
  mbasic lex --line '10 PRINT "HALLO"'
  cat programm.bas | mbasic lex -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexLine, "line", "l", "", "Einzelne Zeile statt Datei")
}

func runLex(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	lines := []string{lexLine}
	if lexLine == "" {
		in, name, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()

		lines = nil
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	failed := false
	first := true
	for _, line := range lines {
		if mdwstringx.IsBlank(line) {
			continue
		}
		if !first {
			fmt.Println()
		}
		first = false

		ts, err := engine.Tokenize(line)
		if err != nil {
			failed = true
			fmt.Fprint(os.Stderr, render.Error(err, line, styled()))
			continue
		}
		fmt.Print(render.Tokens(ts, styled()))
	}

	if failed {
		return errSourceErrors
	}
	return nil
}
