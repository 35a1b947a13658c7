package main

import (
	"fmt"
	"io"

	"github.com/sufield/devcheck/assert"
)

func listCommand(w io.Writer, args []string) error {
	cmd := &Command{Name: "list", Description: "List check categories and their build tags", Usage: "checktags list [flags]"}
	fs := cmd.NewFlagSet(w)
	compiled := fs.Bool("compiled", true, "Show whether each category is compiled into this binary")
	if err := fs.Parse(args); err != nil {
		return err
	}

	headers := []string{"Category", "Enable tag", "Opt-out tag"}
	if *compiled {
		headers = append(headers, "Compiled in")
	}
	table := NewTableWriter(headers)
	for _, c := range assert.Categories() {
		row := []string{c.String(), c.Tag(), c.OptOutTag()}
		if *compiled {
			row = append(row, yesNo(c.Enabled()))
		}
		table.AddRow(row)
	}
	table.Print(w)

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "A category is compiled in when (debug && !nocheck_X) || check_X holds.")
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
