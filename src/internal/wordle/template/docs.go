// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package wordletemplate parses and validates the 5-character Wordle guess
// template. A template consists of lowercase letters, underscores for unknown
// positions, and exactly one period marking the position to be substituted.
// Parsing is the only entry point; a Template value is immutable afterwards.
package wordletemplate
