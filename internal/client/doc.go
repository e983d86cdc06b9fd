// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It parses the command operands left over after flag parsing and drives the
// server adapter:
//
//	push [-F name=value]... <remote-path> <file>...   upload local files
//	pull <remote-path> [out]                          download a file
//	ls   <remote-dir>                                 list a directory
package client
