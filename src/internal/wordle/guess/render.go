// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wordleguess

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTable renders the guesses as a formatted markdown table with one
// numbered row per guess, using tablewriter.
func (g *Generator) RenderTable() string {
	guesses := g.Guesses()
	if len(guesses) == 0 {
		return "No guesses to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "Guess"})

	rows := make([][]string, 0, len(guesses))
	for i, guess := range guesses {
		rows = append(rows, []string{strconv.Itoa(i + 1), guess})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// Summary is the machine-readable form of a generation run.
type Summary struct {
	Template       string   `json:"template"`
	TestedAlphabet string   `json:"tested_alphabet"`
	Guesses        []string `json:"guesses"`
}

// ToJSON returns the guesses as an indented JSON summary containing the
// template, the tested alphabet, and every capitalized guess in order.
func (g *Generator) ToJSON() ([]byte, error) {
	return json.MarshalIndent(Summary{
		Template:       g.template.String(),
		TestedAlphabet: g.tested,
		Guesses:        g.Guesses(),
	}, "", "  ")
}
