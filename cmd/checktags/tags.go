package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sufield/devcheck/internal/config"
)

func tagsCommand(w io.Writer, args []string) error {
	cmd := &Command{Name: "tags", Description: "Print the build tags for a profile", Usage: "checktags tags <profile.yaml> [flags]"}
	fs := cmd.NewFlagSet(w)
	format := fs.String("format", "flag", "Output format: flag (comma-separated), lines (one per line)")
	if err := fs.Parse(reorderFlags(args)); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("profile path required")
	}

	p, err := config.Load(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	tags, err := config.Tags(p)
	if err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	switch *format {
	case "flag":
		fmt.Fprintln(w, strings.Join(tags, ","))
	case "lines":
		for _, tag := range tags {
			fmt.Fprintln(w, tag)
		}
	default:
		return fmt.Errorf("unknown format: %s (use 'flag' or 'lines')", *format)
	}
	return nil
}

// reorderFlags moves flags ahead of positional arguments so that
// "tags checks.yaml --format lines" parses like the documented usage.
func reorderFlags(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positional = append(positional, arg)
			continue
		}
		flags = append(flags, arg)
		if !strings.Contains(arg, "=") && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			flags = append(flags, args[i+1])
			i++
		}
	}
	return append(flags, positional...)
}
