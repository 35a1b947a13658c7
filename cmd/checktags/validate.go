package main

import (
	"fmt"
	"io"

	"github.com/sufield/devcheck/assert"
	"github.com/sufield/devcheck/internal/config"
)

func validateCommand(w io.Writer, args []string) error {
	cmd := &Command{Name: "validate", Description: "Validate a profile and show the categories it compiles in", Usage: "checktags validate <profile.yaml>"}
	fs := cmd.NewFlagSet(w)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("profile path required")
	}
	path := fs.Arg(0)

	p, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	state, err := config.Resolve(p)
	if err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	tagsFlag, err := config.TagsFlag(p)
	if err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	fmt.Fprintf(w, "✓ Valid profile: %s\n", path)
	if p.Name != "" {
		fmt.Fprintf(w, "  Name: %s\n", p.Name)
	}
	if tagsFlag == "" {
		tagsFlag = "(none, all checks compiled out)"
	}
	fmt.Fprintf(w, "  Tags: %s\n\n", tagsFlag)

	table := NewTableWriter([]string{"Category", "State"})
	for _, c := range assert.Categories() {
		s := "off"
		if state[c] {
			s = "on"
		}
		table.AddRow([]string{c.String(), s})
	}
	table.Print(w)
	return nil
}
