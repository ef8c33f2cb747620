package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

func printItem(w io.Writer, id, title, category string, tags []string) {
	fmt.Fprintf(w, "  %s  %s %s\n", faint(id), bold(title), yellow("["+category+"]"))
	if len(tags) > 0 {
		fmt.Fprintf(w, "      %s %s\n", faint("Tags:"), cyan(strings.Join(tags, ", ")))
	}
}

func printEmpty(w io.Writer) {
	fmt.Fprintln(w, faint("No matching entries."))
}
