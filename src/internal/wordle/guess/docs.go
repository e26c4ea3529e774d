// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package wordleguess computes the tested alphabet from the include/exclude
// filters, enumerates one candidate guess per tested letter, and renders the
// result in columnar, markdown-table, or JSON form. Generation runs on
// already-validated inputs and cannot fail; only the line-width parser
// returns an error.
package wordleguess
