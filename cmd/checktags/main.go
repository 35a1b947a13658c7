// Command checktags turns YAML build profiles into -tags values for the
// devcheck assert package and reports which check categories a build has.
package main

import (
	"fmt"
	"io"
	"os"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	registry := NewCommandRegistry(VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}, os.Stdout)
	registerCommands(registry)

	if err := registry.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func registerCommands(r *CommandRegistry) {
	r.Register(&Command{
		Name:        "list",
		Description: "List check categories and their build tags",
		Usage:       "checktags list [flags]",
		Examples: []string{
			"checktags list",
			"checktags list --compiled=false",
		},
		Run: listCommand,
	})

	r.Register(&Command{
		Name:        "tags",
		Description: "Print the build tags for a profile",
		Usage:       "checktags tags <profile.yaml> [flags]",
		Examples: []string{
			"checktags tags checks.yaml",
			"checktags tags checks.yaml --format lines",
		},
		Run: tagsCommand,
	})

	r.Register(&Command{
		Name:        "validate",
		Description: "Validate a profile and show the categories it compiles in",
		Usage:       "checktags validate <profile.yaml>",
		Examples: []string{
			"checktags validate checks.yaml",
		},
		Run: validateCommand,
	})

	r.Register(&Command{
		Name:        "version",
		Description: "Show version information",
		Usage:       "checktags version",
		Run: func(w io.Writer, args []string) error {
			return versionCommand(w, r.version)
		},
	})

	r.Register(&Command{
		Name:        "help",
		Description: "Show help information",
		Usage:       "checktags help [command]",
		Run: func(w io.Writer, args []string) error {
			if len(args) > 0 {
				cmd, ok := r.commands[args[0]]
				if !ok {
					return fmt.Errorf("unknown command: %s", args[0])
				}
				cmd.PrintUsage(w)
				return nil
			}
			r.PrintHelp(w)
			return nil
		},
	})
}
