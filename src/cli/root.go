// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/wordle-guess-generator/src/internal/helper/posix"
	wordleguess "github.com/H0llyW00dzZ/wordle-guess-generator/src/internal/wordle/guess"
	wordleletters "github.com/H0llyW00dzZ/wordle-guess-generator/src/internal/wordle/letters"
	wordletemplate "github.com/H0llyW00dzZ/wordle-guess-generator/src/internal/wordle/template"
	"github.com/spf13/cobra"
)

var (
	// ErrConflictingLetterFilters indicates that --include and --exclude were
	// supplied together.
	ErrConflictingLetterFilters = errors.New("cli: --include and --exclude are mutually exclusive")

	// ErrConflictingOutputModes indicates that --table and --json were
	// supplied together.
	ErrConflictingOutputModes = errors.New("cli: --table and --json are mutually exclusive")
)

// OperationPerformed reports whether a generation run completed during the
// last call to Execute. Help and version invocations leave it false.
var OperationPerformed bool

var (
	excludeLetters string
	includeLetters string
	numGuesses     string
	tableOutput    bool
	jsonOutput     bool
)

// Execute runs the root command with the given context and version string,
// returning any validation or execution error. All input validation happens
// before the first byte of guess output is written.
func Execute(ctx context.Context, version string) error {
	OperationPerformed = false

	longHelp := "Generates candidate Wordle guesses from a 5-character template with one\n" +
		"wildcard position marked by a period, e.g. \"s.ick\" or \"_a.e_\"."

	rootCmd := &cobra.Command{
		Use:           posix.GetExecutableName() + " TEMPLATE",
		Short:         "Wordle guess generator",
		Long:          longHelp,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		RunE:          execCli,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&excludeLetters, "exclude", "e", "", "letters to omit from the wildcard position")
	rootCmd.Flags().StringVarP(&includeLetters, "include", "i", "", "letters to test in the wildcard position (exclusive with --exclude)")
	rootCmd.Flags().StringVarP(&numGuesses, "num_guesses", "n", "5", "number of guesses per output line")
	rootCmd.Flags().BoolVarP(&tableOutput, "table", "t", false, "display guesses as a markdown table")
	rootCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "emit a JSON summary of the guesses")

	return rootCmd.ExecuteContext(ctx)
}

// execCli validates the template, letter filters, and line width, then
// generates and writes the guesses in the selected output mode.
func execCli(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("include") && cmd.Flags().Changed("exclude") {
		return ErrConflictingLetterFilters
	}
	if tableOutput && jsonOutput {
		return ErrConflictingOutputModes
	}

	tpl, err := wordletemplate.Parse(args[0])
	if err != nil {
		return err
	}

	var include, exclude wordleletters.Set
	if includeLetters != "" {
		if include, err = wordleletters.Parse(includeLetters); err != nil {
			return err
		}
	}
	if excludeLetters != "" {
		if exclude, err = wordleletters.Parse(excludeLetters); err != nil {
			return err
		}
	}

	lineWidth, err := wordleguess.ParseLineWidth(numGuesses)
	if err != nil {
		return err
	}

	gen := wordleguess.New(tpl, include, exclude, lineWidth)
	out := cmd.OutOrStdout()

	switch {
	case jsonOutput:
		data, err := gen.ToJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case tableOutput:
		fmt.Fprint(out, gen.RenderTable())
	default:
		if err := gen.Write(out); err != nil {
			return err
		}
	}

	OperationPerformed = true
	return nil
}
