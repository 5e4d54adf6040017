// Package utils provides general-purpose helper utilities used across
// different parts of the application: HTTP client construction and request
// identifier generation.
package utils
