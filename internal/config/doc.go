// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the vc-tracker server and CLI.
//
// Server configuration is assembled from several sources; each later source
// overrides the non-zero fields of the earlier ones:
//  1. Built-in defaults
//  2. JSON config file (path from CONFIG or -c / -config)
//  3. Environment variables
//  4. Command-line flags
//
// The client skips the flags layer: the CLI owns its own command line.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI.
package config
