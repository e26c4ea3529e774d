// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wordletemplate

import (
	"errors"
	"regexp"
	"strings"
)

// Length is the fixed number of characters in a Wordle template.
const Length = 5

var (
	// ErrTemplateLength indicates that the template is not exactly 5 characters long.
	ErrTemplateLength = errors.New("wordletemplate: template must be 5 characters long")

	// ErrTemplateFormat indicates that the template does not match the required
	// shape of letters, underscores, and a single period.
	ErrTemplateFormat = errors.New("wordletemplate: template must contain only letters, underscores, and a single period")
)

// shape matches 0-4 letters/blanks, one wildcard marker, then 0-4 letters/blanks.
// Combined with the fixed length check this pins the total length to 5.
var shape = regexp.MustCompile(`^[a-z_]{0,4}\.[a-z_]{0,4}$`)

// Template is a validated, lowercased 5-character Wordle pattern with exactly
// one wildcard marker '.' and optional blank positions '_'. It is immutable
// once parsed and is split into the prefix before the marker and the suffix
// after it.
type Template struct {
	prefix string
	suffix string
}

// Parse validates raw as a Wordle template and returns its normalized form.
//
// Input is case-insensitive; the returned Template is lowercased. Exactly one
// '.' must be present, every other character must be a lowercase letter or '_',
// and the total length must be 5.
func Parse(raw string) (Template, error) {
	normalized := strings.ToLower(raw)
	if len([]rune(normalized)) != Length {
		return Template{}, ErrTemplateLength
	}

	if !shape.MatchString(normalized) {
		return Template{}, ErrTemplateFormat
	}

	marker := strings.IndexByte(normalized, '.')
	return Template{
		prefix: normalized[:marker],
		suffix: normalized[marker+1:],
	}, nil
}

// Prefix returns the characters before the wildcard marker.
func (t Template) Prefix() string { return t.prefix }

// Suffix returns the characters after the wildcard marker.
func (t Template) Suffix() string { return t.suffix }

// WildcardPos returns the zero-based position of the wildcard marker.
func (t Template) WildcardPos() int { return len(t.prefix) }

// String returns the template in its original 5-character form, with the
// wildcard marker restored.
func (t Template) String() string { return t.prefix + "." + t.suffix }

// Fill substitutes letter into the wildcard position and returns the
// resulting 5-character candidate word, still fully lowercase.
func (t Template) Fill(letter byte) string {
	return t.prefix + string(letter) + t.suffix
}
