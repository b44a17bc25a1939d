package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"mirnaexplorer/mirna"
)

var (
	headingColor = color.New(color.FgHiCyan, color.Bold)
	nameColor    = color.New(color.FgHiWhite, color.Bold)
	detailColor  = color.New(color.FgWhite)
	mutedColor   = color.New(color.FgHiBlack)
)

func renderHeading(w io.Writer, query string, n int) {
	noun := "matches"
	if n == 1 {
		noun = "match"
	}
	headingColor.Fprintf(w, "%s", query)
	mutedColor.Fprintf(w, " (%d %s)\n", n, noun)
}

func renderMiRNAs(w io.Writer, query string, entries []mirna.MiRNA) {
	renderHeading(w, query, len(entries))
	for _, e := range entries {
		fmt.Fprint(w, "  ")
		nameColor.Fprint(w, e.Name)
		detailColor.Fprintf(w, "  %s", e.ID)
		if e.Species != "" {
			mutedColor.Fprintf(w, "  %s", e.Species)
		}
		fmt.Fprintln(w)
		if e.Sequence != "" {
			detailColor.Fprintf(w, "      %s\n", e.Sequence)
		}
		if e.Description != "" {
			mutedColor.Fprintf(w, "      %s\n", e.Description)
		}
	}
}

func renderPredictions(w io.Writer, query string, predictions []mirna.Prediction) {
	renderHeading(w, query, len(predictions))
	for _, p := range predictions {
		fmt.Fprint(w, "  ")
		nameColor.Fprintf(w, "%-12s", p.Gene)
		detailColor.Fprintf(w, "  %.3f", p.Score)
		if p.Source != "" {
			mutedColor.Fprintf(w, "  %s", p.Source)
		}
		fmt.Fprintln(w)
	}
}

func renderPathways(w io.Writer, query string, pathways []mirna.Pathway) {
	renderHeading(w, query, len(pathways))
	for _, p := range pathways {
		fmt.Fprint(w, "  ")
		nameColor.Fprint(w, p.Name)
		detailColor.Fprintf(w, "  %s", p.ID)
		if p.Source != "" {
			mutedColor.Fprintf(w, "  %s", p.Source)
		}
		fmt.Fprintln(w)
		if p.URL != "" {
			mutedColor.Fprintf(w, "      %s\n", p.URL)
		}
	}
}
