// Package idgen generates kiosk run identifiers backed by nanoid.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultPrefix is prepended to every generated run ID.
var DefaultPrefix = "run-"

// Alphabet defines the character set used for the random portion of the ID.
// Ambiguous characters (0/O, 1/l/I) are left out so an agent can read an ID
// off the kiosk screen.
var Alphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Length is the number of random characters generated (excluding the prefix).
var Length = 8

// Generate returns a new run ID using the default prefix.
func Generate() (string, error) {
	return GenerateWithPrefix(DefaultPrefix)
}

// MustGenerate is Generate for callers that cannot proceed without an ID.
func MustGenerate() string {
	id, err := Generate()
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateWithPrefix returns a new unique ID with the given prefix.
func GenerateWithPrefix(prefix string) (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return prefix + id, nil
}
