package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cfgpp/internal/codec"
	"cfgpp/internal/diagfmt"
	"cfgpp/internal/driver"
	"cfgpp/internal/value"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] file",
	Short: "Convert between CFG++ and other formats",
	Long: `Convert reads a configuration in one format and writes it in another.
CFG++, JSON, YAML and TOML are supported on both sides. Converting away
from CFG++ flattens enum values to plain strings.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("from", "cfgpp", "input format (cfgpp|json|yaml|toml)")
	convertCmd.Flags().String("to", "json", "output format (cfgpp|json|yaml|toml)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	v, err := readInput(cmd, args[0], strings.ToLower(from))
	if err != nil {
		return err
	}
	return writeOutput(os.Stdout, v, strings.ToLower(to))
}

func readInput(cmd *cobra.Command, path, format string) (*value.Value, error) {
	if format == "cfgpp" {
		opts, _, err := buildParserOptions(cmd)
		if err != nil {
			return nil, err
		}
		result, err := driver.Parse(path, opts, maxDiagnostics(cmd))
		if result != nil && result.Bag.Len() > 0 {
			result.Bag.Sort()
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
				Color:   colorEnabled(cmd, os.Stderr),
				Context: true,
			})
		}
		if err != nil {
			return nil, err
		}
		return result.Value, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := string(content)
	switch format {
	case "json":
		return codec.FromJSON(text)
	case "yaml":
		return codec.FromYAML(text)
	case "toml":
		return codec.FromTOML(text)
	default:
		return nil, fmt.Errorf("unknown input format: %s", format)
	}
}

func writeOutput(w *os.File, v *value.Value, format string) error {
	switch format {
	case "cfgpp":
		return diagfmt.FormatValuePretty(w, v)
	case "json":
		out, err := codec.ToJSON(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
		return nil
	case "yaml":
		out, err := codec.ToYAML(v)
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
		return nil
	case "toml":
		out, err := codec.ToTOML(v)
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
