package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwstringx "github.com/msto63/mbasic/foundation/utils/stringx"
)

var functionsCmd = &cobra.Command{
	Use:     "functions",
	Aliases: []string{"funcs"},
	Short:   "Bekannte Funktionen anzeigen",
	Long: `Zeigt alle eingebauten und in der Config definierten Funktionen
mit der erlaubten Anzahl an Argumenten.`,
	Args: cobra.NoArgs,
	RunE: runFunctions,
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}

func runFunctions(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	reg := engine.Registry()
	for _, name := range reg.Names() {
		def, err := reg.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s %s\n",
			mdwstringx.PadRight(def.Name, 8, ' '),
			mdwstringx.PadRight(def.ArityString(), 20, ' '),
			def.Description)
	}
	return nil
}
