// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package report runs the bounded extractors of package sslutils over a
// certificate and renders the outcome as text, JSON or a markdown table.
//
// Every field is extracted into a buffer of a fixed, configurable capacity, the
// same way a proxy fetches sample values into its trash chunks, so a report shows
// exactly what a caller with that capacity would observe: a field that does not
// fit is reported as too small rather than silently grown.
package report
