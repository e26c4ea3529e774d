// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the Wordle guess
// generator. It implements a Cobra-based CLI that validates the guess
// template, the include/exclude letter filters, and the line width, then
// writes the generated guesses in columnar, markdown-table, or JSON form.
// All validation happens before generation, so a rejected invocation never
// produces partial guess output.
package cli
