// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wordleguess_test

import (
	"bytes"
	"strings"
	"testing"

	wordleguess "github.com/H0llyW00dzZ/wordle-guess-generator/src/internal/wordle/guess"
	wordleletters "github.com/H0llyW00dzZ/wordle-guess-generator/src/internal/wordle/letters"
	wordletemplate "github.com/H0llyW00dzZ/wordle-guess-generator/src/internal/wordle/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTemplate(t *testing.T, raw string) wordletemplate.Template {
	t.Helper()
	tpl, err := wordletemplate.Parse(raw)
	require.NoError(t, err)
	return tpl
}

func mustLetters(t *testing.T, raw string) wordleletters.Set {
	t.Helper()
	set, err := wordleletters.Parse(raw)
	require.NoError(t, err)
	return set
}

func TestParseLineWidth(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "default value", raw: "5", want: 5},
		{name: "one", raw: "1", want: 1},
		{name: "large", raw: "26", want: 26},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-3", wantErr: true},
		{name: "non-integer", raw: "abc", wantErr: true},
		{name: "float", raw: "2.5", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := wordleguess.ParseLineWidth(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, wordleguess.ErrLineWidth)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestTestedAlphabet(t *testing.T) {
	tpl := mustTemplate(t, "s.ick")

	tests := []struct {
		name    string
		include wordleletters.Set
		exclude wordleletters.Set
		want    string
	}{
		{
			name: "no filters uses full alphabet",
			want: wordleletters.Alphabet,
		},
		{
			name:    "include wins",
			include: mustLetters(t, "dbrt"),
			want:    "bdrt",
		},
		{
			name:    "exclude removes letters",
			exclude: mustLetters(t, "az"),
			want:    "bcdefghijklmnopqrstuvwxy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := wordleguess.New(tpl, tt.include, tt.exclude, wordleguess.DefaultLineWidth)
			assert.Equal(t, tt.want, gen.TestedAlphabet())
		})
	}
}

func TestGuesses_FullAlphabet(t *testing.T) {
	gen := wordleguess.New(mustTemplate(t, "s.ick"), wordleletters.Set{}, wordleletters.Set{}, 5)

	guesses := gen.Guesses()
	require.Len(t, guesses, 26)
	assert.Equal(t, "Saick", guesses[0])
	assert.Equal(t, "Stick", guesses[19])
	assert.Equal(t, "Szick", guesses[25])
}

func TestGuesses_CapitalizesPositionZero(t *testing.T) {
	tests := []struct {
		name     string
		template string
		include  string
		want     []string
	}{
		{
			name:     "substituted letter at position zero",
			template: ".ance",
			include:  "dbrt",
			want:     []string{"Bance", "Dance", "Rance", "Tance"},
		},
		{
			name:     "literal letter at position zero",
			template: "cra.e",
			include:  "b",
			want:     []string{"Crabe"},
		},
		{
			// position 0 holds an underscore; uppercasing it is a no-op
			name:     "blank at position zero",
			template: "_a.ed",
			include:  "t",
			want:     []string{"_ated"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := wordleguess.New(mustTemplate(t, tt.template), mustLetters(t, tt.include), wordleletters.Set{}, 5)
			assert.Equal(t, tt.want, gen.Guesses())
		})
	}
}

func TestWrite_FullAlphabetSixLines(t *testing.T) {
	var buf bytes.Buffer
	gen := wordleguess.New(mustTemplate(t, "s.ick"), wordleletters.Set{}, wordleletters.Set{}, 5)
	require.NoError(t, gen.Write(&buf))

	output := buf.String()
	require.True(t, strings.HasSuffix(output, "\n"), "output must end with a newline")

	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	require.Len(t, lines, 6, "26 guesses at width 5 should span 6 lines")
	assert.Equal(t, "Saick\tSbick\tScick\tSdick\tSeick", lines[0])
	assert.Equal(t, "Szick", lines[5], "last line holds the single leftover guess")

	for _, line := range lines[:5] {
		assert.Len(t, strings.Split(line, "\t"), 5)
	}
}

func TestWrite_IncludeSingleLine(t *testing.T) {
	var buf bytes.Buffer
	gen := wordleguess.New(mustTemplate(t, ".ance"), mustLetters(t, "dbrt"), wordleletters.Set{}, 5)
	require.NoError(t, gen.Write(&buf))

	assert.Equal(t, "Bance\tDance\tRance\tTance\n", buf.String())
}

func TestWrite_ExcludeWidthThree(t *testing.T) {
	var buf bytes.Buffer
	gen := wordleguess.New(mustTemplate(t, "cra.e"), wordleletters.Set{}, mustLetters(t, "az"), 3)
	require.NoError(t, gen.Write(&buf))

	output := buf.String()
	require.True(t, strings.HasSuffix(output, "\n"))

	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	require.Len(t, lines, 8, "24 guesses at width 3 should span 8 lines")
	assert.Equal(t, "Crabe\tCrace\tCrade", lines[0])
	assert.Equal(t, "Crawe\tCraxe\tCraye", lines[7])
}

func TestWrite_ExactMultipleOfWidth(t *testing.T) {
	var buf bytes.Buffer
	gen := wordleguess.New(mustTemplate(t, "s.ick"), mustLetters(t, "abcd"), wordleletters.Set{}, 2)
	require.NoError(t, gen.Write(&buf))

	assert.Equal(t, "Saick\tSbick\nScick\tSdick\n", buf.String())
	assert.False(t, strings.HasSuffix(buf.String(), "\n\n"), "no blank line after a full final row")
}

func TestWrite_WidthOne(t *testing.T) {
	var buf bytes.Buffer
	gen := wordleguess.New(mustTemplate(t, ".ance"), mustLetters(t, "bd"), wordleletters.Set{}, 1)
	require.NoError(t, gen.Write(&buf))

	assert.Equal(t, "Bance\nDance\n", buf.String())
}

func TestWrite_PassesUnderscoresThrough(t *testing.T) {
	var buf bytes.Buffer
	gen := wordleguess.New(mustTemplate(t, "s._c_"), mustLetters(t, "t"), wordleletters.Set{}, 5)
	require.NoError(t, gen.Write(&buf))

	assert.Equal(t, "St_c_\n", buf.String())
}
