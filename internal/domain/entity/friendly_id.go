package entity

import (
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// FriendlyIDPrefix starts every customer-facing order id.
	FriendlyIDPrefix = "SS-"
	// FriendlyIDAlphabet is the set the random suffix is drawn from.
	FriendlyIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// FriendlyIDLength is the length of the random suffix.
	FriendlyIDLength = 6
)

var friendlyIDPattern = regexp.MustCompile(`^SS-[0-9A-Z]{6}$`)

// NewFriendlyID draws a fresh SS-XXXXXX identifier.
func NewFriendlyID() (string, error) {
	suffix, err := gonanoid.Generate(FriendlyIDAlphabet, FriendlyIDLength)
	if err != nil {
		return "", err
	}

	return FriendlyIDPrefix + suffix, nil
}

// NormalizeFriendlyID trims and upper-cases user input.
func NormalizeFriendlyID(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// IsFriendlyID reports whether s is a well-formed friendly id.
func IsFriendlyID(s string) bool {
	return friendlyIDPattern.MatchString(s)
}
