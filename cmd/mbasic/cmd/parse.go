package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwast "github.com/msto63/mbasic/foundation/basic/ast"
	mdwprogram "github.com/msto63/mbasic/foundation/basic/program"
	"github.com/msto63/mbasic/internal/render"
)

var (
	parseFormat string
	parseLine   string
)

var parseCmd = &cobra.Command{
	Use:   "parse [datei|-]",
	Short: "Anweisungen parsen",
	Long: `Parst jede Zeile zu einer Anweisung und gibt sie aus.

Formate:
  text  - kanonische Form, vollstaendig geklammert
  tree  - eingerueckter Anweisungsbaum
  yaml  - Baum als YAML-Liste

Spaetere Zeilen mit gleicher Nummer ersetzen fruehere.

Beispiele:
  mbasic parse programm.bas
  mbasic parse --format tree --line '10 IF A > 5 THEN GOTO 100'
  mbasic parse --format yaml programm.bas > ast.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "Ausgabeformat (text, tree, yaml)")
	parseCmd.Flags().StringVarP(&parseLine, "line", "l", "", "Einzelne Zeile statt Datei")
}

func runParse(cmd *cobra.Command, args []string) error {
	switch parseFormat {
	case "text", "tree", "yaml":
	default:
		return fmt.Errorf("unbekanntes Format %q (text, tree, yaml)", parseFormat)
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	var lines []mdwprogram.Line
	failed := false

	if parseLine != "" {
		stmt, err := engine.ParseLine(parseLine)
		if err != nil {
			fmt.Fprint(os.Stderr, render.Error(err, parseLine, styled()))
			return errSourceErrors
		}
		lines = []mdwprogram.Line{{Number: stmt.LineNumber(), Source: parseLine, Stmt: stmt}}
	} else {
		prog, report, err := loadProgram(cmd, engine, args)
		if err != nil {
			return err
		}
		lines = prog.Lines()
		failed = !report.OK()
	}

	if err := writeStatements(lines, parseFormat); err != nil {
		return err
	}
	if failed {
		return errSourceErrors
	}
	return nil
}

func writeStatements(lines []mdwprogram.Line, format string) error {
	switch format {
	case "tree":
		var b strings.Builder
		for i, line := range lines {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(render.Tree(line.Stmt, styled()))
		}
		fmt.Print(b.String())

	case "yaml":
		docs := make([]map[string]interface{}, 0, len(lines))
		for _, line := range lines {
			docs = append(docs, mdwast.ToMap(line.Stmt))
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return err
		}
		return enc.Close()

	default:
		for _, line := range lines {
			fmt.Println(line.Stmt.String())
		}
	}
	return nil
}
