// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the course catalog.
//
// Each invocation runs one command against the API through
// [adapter.CatalogAdapter]: request bodies are read as JSON from the input
// stream and results are written as JSON to the output stream.
package client
