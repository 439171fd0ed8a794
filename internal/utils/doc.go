// Package utils provides small helpers shared across the application:
// password digests, identifier generation, lenient integer parsing of
// spreadsheet cells and an HTTP client wrapper.
package utils
