package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mbasic/foundation/basic"
	mdwast "github.com/msto63/mbasic/foundation/basic/ast"
	mdwprogram "github.com/msto63/mbasic/foundation/basic/program"
	mdwregistry "github.com/msto63/mbasic/foundation/basic/registry"
	"github.com/msto63/mbasic/internal/render"
	"github.com/msto63/mbasic/pkg/core/cache"
)

// errSourceErrors makes the process exit non-zero after problems were printed
var errSourceErrors = errors.New("quelltext enthaelt Fehler")

// newEngine builds the front end from the loaded configuration
func newEngine() (*basic.Engine, error) {
	defs := make([]mdwregistry.FunctionDefinition, 0, len(appConfig.Functions))
	for _, fn := range appConfig.Functions {
		defs = append(defs, mdwregistry.FunctionDefinition{
			Name:        fn.Name,
			MinArgs:     fn.MinArgs,
			MaxArgs:     fn.MaxArgs,
			Description: fn.Description,
		})
	}

	return basic.New(basic.Options{
		Logger:             logger,
		MaxLineLength:      appConfig.Parser.MaxLineLength,
		MaxStatementDepth:  appConfig.Parser.MaxStatementDepth,
		MaxExpressionDepth: appConfig.Parser.MaxExpressionDepth,
		Functions:          defs,
		Cache:              cache.New[mdwast.Statement](cache.Config{MaxItems: appConfig.Parser.CacheSize}),
	})
}

// openInput opens the file named by args[0], or stdin for "-" or no args
func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, args[0], err
	}
	return f, args[0], nil
}

// loadProgram parses the input named by args within the configured timeout
// and prints every line error to stderr
func loadProgram(cmd *cobra.Command, engine *basic.Engine, args []string) (*mdwprogram.Program, *basic.LoadReport, error) {
	in, name, err := openInput(args)
	if err != nil {
		return nil, nil, err
	}
	defer in.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout := appConfig.General.LoadTimeout.Duration; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	prog, report, err := engine.Load(ctx, in)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}

	for _, lineErr := range report.Errors {
		fmt.Fprintf(os.Stderr, "%s:%d: %s", name, lineErr.Row, render.Error(lineErr.Err, lineErr.Source, styled()))
	}
	return prog, report, nil
}

// styled reports whether output may carry colors
func styled() bool {
	return !plain
}
