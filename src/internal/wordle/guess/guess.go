// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wordleguess

import (
	"errors"
	"io"
	"strconv"

	"github.com/H0llyW00dzZ/wordle-guess-generator/src/internal/helper/gc"
	wordleletters "github.com/H0llyW00dzZ/wordle-guess-generator/src/internal/wordle/letters"
	wordletemplate "github.com/H0llyW00dzZ/wordle-guess-generator/src/internal/wordle/template"
)

// DefaultLineWidth is the number of guesses printed per line when the user
// does not override it.
const DefaultLineWidth = 5

// ErrLineWidth indicates that the num_guesses argument is not a strictly
// positive integer.
var ErrLineWidth = errors.New("wordleguess: num_guesses must be a positive integer")

// ParseLineWidth validates raw as a line width. It must parse as an integer
// and be strictly positive.
func ParseLineWidth(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, ErrLineWidth
	}
	return n, nil
}

// Generator enumerates candidate guesses for a validated template. The
// tested alphabet is fixed at construction; generation itself cannot fail.
type Generator struct {
	template  wordletemplate.Template
	tested    string
	lineWidth int
}

// New creates a Generator for tpl. The tested alphabet is the include set
// when non-empty, otherwise the complement of the exclude set, otherwise the
// full alphabet; include and exclude cannot both be set (the CLI boundary
// rejects that before construction). A lineWidth < 1 falls back to
// DefaultLineWidth.
func New(tpl wordletemplate.Template, include, exclude wordleletters.Set, lineWidth int) *Generator {
	var tested string
	switch {
	case !include.IsEmpty():
		tested = include.Letters()
	case !exclude.IsEmpty():
		tested = exclude.Complement().Letters()
	default:
		tested = wordleletters.Alphabet
	}

	if lineWidth < 1 {
		lineWidth = DefaultLineWidth
	}

	return &Generator{
		template:  tpl,
		tested:    tested,
		lineWidth: lineWidth,
	}
}

// Template returns the template the generator was built from.
func (g *Generator) Template() wordletemplate.Template { return g.template }

// TestedAlphabet returns the letters substituted into the wildcard position,
// in ascending order.
func (g *Generator) TestedAlphabet() string { return g.tested }

// LineWidth returns the number of guesses emitted per output line.
func (g *Generator) LineWidth() int { return g.lineWidth }

// Guesses returns every candidate guess in tested-alphabet order, each with
// its first character capitalized for display.
func (g *Generator) Guesses() []string {
	guesses := make([]string, 0, len(g.tested))
	for i := 0; i < len(g.tested); i++ {
		guesses = append(guesses, capitalize(g.template.Fill(g.tested[i])))
	}
	return guesses
}

// Write streams the guesses to w in columnar form: guesses on the same line
// separated by a single tab, a newline after every lineWidth guesses, and a
// trailing newline when a partial line remains. An empty tested alphabet
// produces no output at all.
func (g *Generator) Write(w io.Writer) error {
	if len(g.tested) == 0 {
		return nil
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	perLine := 0
	for i := 0; i < len(g.tested); i++ {
		if perLine > 0 {
			buf.WriteByte('\t')
		}
		buf.WriteString(capitalize(g.template.Fill(g.tested[i])))

		perLine++
		if perLine == g.lineWidth {
			buf.WriteByte('\n')
			perLine = 0
		}
	}
	if perLine > 0 {
		buf.WriteByte('\n')
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// capitalize uppercases position 0 of word. The target is always the first
// character of the final string, whether it holds a literal letter, an
// underscore, or the substituted letter; uppercasing a non-letter is a no-op.
func capitalize(word string) string {
	if word == "" || word[0] < 'a' || word[0] > 'z' {
		return word
	}
	return string(word[0]-'a'+'A') + word[1:]
}
