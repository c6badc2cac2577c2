package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cfgpp/internal/parser"
	"cfgpp/internal/project"
	"cfgpp/internal/trace"
)

// buildParserOptions layers parser options: defaults, then the nearest
// cfgpp.toml manifest, then explicit flags. The manifest is optional and
// returned so commands can pick up its schema and cache settings.
func buildParserOptions(cmd *cobra.Command) (parser.Options, *project.Manifest, error) {
	opts := parser.DefaultOptions()

	var manifest *project.Manifest
	if path, ok, err := project.FindManifest("."); err == nil && ok {
		manifest, err = project.Load(path)
		if err != nil {
			return opts, nil, err
		}
	}
	if manifest != nil {
		if len(manifest.Parse.IncludePaths) > 0 {
			opts.IncludePaths = manifest.Parse.IncludePaths
		}
		if manifest.Parse.MaxIncludeDepth > 0 {
			opts.MaxIncludeDepth = manifest.Parse.MaxIncludeDepth
		}
		if manifest.Parse.ExpandEnvVars != nil {
			opts.ExpandEnvVars = *manifest.Parse.ExpandEnvVars
		}
		if manifest.Parse.ProcessIncludes != nil {
			opts.ProcessIncludes = *manifest.Parse.ProcessIncludes
		}
	}

	flags := cmd.Root().PersistentFlags()
	if paths, err := flags.GetStringSlice("include-path"); err != nil {
		return opts, manifest, fmt.Errorf("failed to get include-path flag: %w", err)
	} else if len(paths) > 0 {
		opts.IncludePaths = paths
	}
	if noEnv, _ := flags.GetBool("no-env"); noEnv {
		opts.ExpandEnvVars = false
	}
	if noIncludes, _ := flags.GetBool("no-includes"); noIncludes {
		opts.ProcessIncludes = false
	}
	if depth, _ := flags.GetInt("max-include-depth"); depth > 0 {
		opts.MaxIncludeDepth = depth
	}

	tracer, err := buildTracer(cmd)
	if err != nil {
		return opts, manifest, err
	}
	opts.Tracer = tracer

	return opts, manifest, nil
}

// buildTracer resolves the --trace flags into a tracer. The nop tracer comes
// back when tracing is off, so callers can use the result unconditionally.
func buildTracer(cmd *cobra.Command) (trace.Tracer, error) {
	flags := cmd.Root().PersistentFlags()

	levelText, _ := flags.GetString("trace")
	level, err := trace.ParseLevel(levelText)
	if err != nil {
		return nil, err
	}
	out, _ := flags.GetString("trace-out")

	return trace.New(trace.Config{
		Level:      level,
		OutputPath: out,
	})
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 100
	}
	return n
}
