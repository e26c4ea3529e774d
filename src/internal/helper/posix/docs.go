// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides cross-platform helpers around the process
// environment. The CLI uses it to derive a clean executable name for its
// usage string regardless of how the binary was invoked or renamed.
package posix
