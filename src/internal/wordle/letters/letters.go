// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package wordleletters

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Alphabet is the full lowercase alphabet in ascending order.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

var (
	// ErrEmptyLetters indicates that a letters argument contained no characters.
	ErrEmptyLetters = errors.New("wordleletters: letters must not be empty")

	// ErrInvalidLetter indicates that a letters argument contained a character
	// outside a-z. The wrapping error names the offending character.
	ErrInvalidLetter = errors.New("wordleletters: invalid letter")
)

// Set is a deduplicated, ascending-sorted collection of lowercase letters.
// The zero value is the empty set.
type Set struct {
	letters []byte
}

// Parse builds a Set from a literal string of letters. Each character is one
// letter; there is no separator. Input is lowercased, sorted, and
// deduplicated. Every character must be in a-z; the first offender in sorted
// order is reported.
func Parse(raw string) (Set, error) {
	if raw == "" {
		return Set{}, ErrEmptyLetters
	}

	chars := []byte(strings.ToLower(raw))
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	var letters []byte
	for _, c := range chars {
		if c < 'a' || c > 'z' {
			return Set{}, fmt.Errorf("%w: '%c'", ErrInvalidLetter, c)
		}
		if len(letters) > 0 && letters[len(letters)-1] == c {
			continue
		}
		letters = append(letters, c)
	}

	return Set{letters: letters}, nil
}

// IsEmpty reports whether the set contains no letters.
func (s Set) IsEmpty() bool { return len(s.letters) == 0 }

// Len returns the number of distinct letters in the set.
func (s Set) Len() int { return len(s.letters) }

// Contains reports whether c is a member of the set.
func (s Set) Contains(c byte) bool {
	i := sort.Search(len(s.letters), func(i int) bool { return s.letters[i] >= c })
	return i < len(s.letters) && s.letters[i] == c
}

// Letters returns the members of the set in ascending order.
func (s Set) Letters() string { return string(s.letters) }

// Complement returns the letters of the full alphabet that are not in the
// set, in ascending order.
func (s Set) Complement() Set {
	var letters []byte
	for i := 0; i < len(Alphabet); i++ {
		if !s.Contains(Alphabet[i]) {
			letters = append(letters, Alphabet[i])
		}
	}
	return Set{letters: letters}
}

// Full returns the set of all 26 letters.
func Full() Set { return Set{letters: []byte(Alphabet)} }
