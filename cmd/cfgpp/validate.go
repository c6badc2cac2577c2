package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cfgpp/internal/diagfmt"
	"cfgpp/internal/driver"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags] file.cfgpp",
	Short: "Validate a CFG++ file against a schema",
	Long: `Validate parses a CFG++ file and checks the resulting value tree against
a schema. Every mismatch is reported, not just the first.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().String("schema", "", "schema file (defaults to the manifest's schema.path)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	opts, manifest, err := buildParserOptions(cmd)
	if err != nil {
		return err
	}

	schemaPath, _ := cmd.Flags().GetString("schema")
	if schemaPath == "" && manifest != nil {
		schemaPath = manifest.Schema.Path
	}
	if schemaPath == "" {
		return errors.New("no schema given: pass --schema or set schema.path in cfgpp.toml")
	}

	result, err := driver.Validate(args[0], schemaPath, opts, maxDiagnostics(cmd))
	if err != nil {
		return err
	}

	if result.Parse.Bag.Len() > 0 {
		result.Parse.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Parse.Bag, result.Parse.FileSet, diagfmt.PrettyOpts{
			Color:   colorEnabled(cmd, os.Stderr),
			Context: true,
		})
	}

	diagfmt.FormatValidation(os.Stdout, result.Errors, colorEnabled(cmd, os.Stdout))
	if len(result.Errors) > 0 {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("%d validation error(s)", len(result.Errors))
	}
	return nil
}
