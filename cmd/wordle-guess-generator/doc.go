// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// wordle-guess-generator is a command-line tool that enumerates candidate
// Wordle guesses from a 5-character template with a single wildcard position.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/wordle-guess-generator/cmd/wordle-guess-generator@latest
//
// # Usage
//
//	wordle-guess-generator TEMPLATE [FLAGS]
//
// The template is 5 characters: lowercase letters, underscores for unknown
// positions, and exactly one period marking the position to substitute.
//
// # Flags
//
//	-e, --exclude      Letters to omit from the wildcard position
//	-i, --include      Letters to test in the wildcard position (exclusive with --exclude)
//	-n, --num_guesses  Guesses per output line (default 5)
//	-t, --table        Display guesses as a markdown table
//	-j, --json         Emit a JSON summary of the guesses
//	    --version      Print the version and exit
//
// # Examples
//
// Test the full alphabet in the second position:
//
//	wordle-guess-generator s.ick
//
// Test only a handful of letters in the first position:
//
//	wordle-guess-generator .ance --include dbrt
//
// Rule out letters already graded gray, three guesses per line:
//
//	wordle-guess-generator cra.e --exclude az -n 3
//
// Produce JSON output:
//
//	wordle-guess-generator s.ick --json > guesses.json
package main
