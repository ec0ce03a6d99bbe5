// Package uniuri generates cryptographically secure random strings suitable for use as unique identifiers.
// It provides functions to create random strings with configurable length and character sets.
// The web service uses it to mint per-request ids for access logging.
package uniuri
