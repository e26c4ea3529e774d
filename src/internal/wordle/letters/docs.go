// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package wordleletters provides the letter-set type backing the include and
// exclude filters. A Set is parsed from a literal character string, lowercased,
// sorted, and deduplicated; membership and complement operations against the
// full a-z alphabet drive the tested-alphabet computation in the guess package.
package wordleletters
