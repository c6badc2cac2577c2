package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cfgpp/internal/codec"
	"cfgpp/internal/diagfmt"
	"cfgpp/internal/driver"
	"cfgpp/internal/parser"
	"cfgpp/internal/ui"
	"cfgpp/internal/value"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.cfgpp...",
	Short: "Parse CFG++ files into a value tree",
	Long: `Parse builds the value tree for one or more CFG++ files. With several
files the top-level objects are merged in argument order, later files
overriding earlier ones.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "cfgpp", "output format (cfgpp|json)")
	parseCmd.Flags().Bool("syntax-only", false, "check syntax without building the tree")
	parseCmd.Flags().Bool("cache", false, "use the on-disk parse cache")
	parseCmd.Flags().Bool("progress", false, "show interactive progress for multi-file parses")
}

func runParse(cmd *cobra.Command, args []string) error {
	opts, manifest, err := buildParserOptions(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	syntaxOnly, _ := cmd.Flags().GetBool("syntax-only")
	useCache, _ := cmd.Flags().GetBool("cache")
	opts.SyntaxOnly = syntaxOnly

	var root *value.Value
	switch {
	case useCache && len(args) == 1 && !syntaxOnly:
		cacheDir := ""
		if manifest != nil {
			cacheDir = manifest.Cache.Dir
		}
		cache, err := driver.OpenDiskCache("cfgpp", cacheDir)
		if err != nil {
			return fmt.Errorf("failed to open parse cache: %w", err)
		}
		root, _, err = driver.ParseCached(cache, args[0], opts, maxDiagnostics(cmd))
		if err != nil {
			return err
		}

	case len(args) == 1:
		result, err := driver.Parse(args[0], opts, maxDiagnostics(cmd))
		if result != nil && result.Bag.Len() > 0 {
			result.Bag.Sort()
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
				Color:   colorEnabled(cmd, os.Stderr),
				Context: true,
			})
		}
		if err != nil {
			return err
		}
		root = result.Value

	default:
		merged, results, err := parseBatch(cmd, args, opts)
		for _, res := range results {
			if res != nil && res.Bag.Len() > 0 {
				res.Bag.Sort()
				diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
					Color:   colorEnabled(cmd, os.Stderr),
					Context: true,
				})
			}
		}
		if err != nil {
			return err
		}
		root = merged
	}

	if syntaxOnly {
		fmt.Fprintln(os.Stdout, "syntax ok")
		return nil
	}

	switch format {
	case "cfgpp":
		return diagfmt.FormatValuePretty(os.Stdout, root)
	case "json":
		out, err := codec.ToJSON(root)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, out)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// parseBatch runs the multi-file parse, with an interactive progress view
// when --progress is set and stdout is a terminal.
func parseBatch(cmd *cobra.Command, args []string, opts parser.Options) (*value.Value, []*driver.ParseResult, error) {
	showProgress, _ := cmd.Flags().GetBool("progress")
	if !showProgress || !isTerminal(os.Stdout) {
		return driver.ParseAll(context.Background(), args, opts, maxDiagnostics(cmd))
	}

	events := make(chan driver.Event)
	done := make(chan struct{})
	var (
		merged  *value.Value
		results []*driver.ParseResult
		err     error
	)
	go func() {
		defer close(done)
		merged, results, err = driver.ParseAllProgress(context.Background(), args, opts, maxDiagnostics(cmd), events)
	}()

	program := tea.NewProgram(ui.NewProgressModel("parsing", args, events))
	if _, uiErr := program.Run(); uiErr != nil {
		return nil, nil, uiErr
	}
	<-done
	return merged, results, err
}
