// Package metadata records where a generated collection came from.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Stamp verification errors.
var (
	ErrNoHashFound  = errors.New("no source hash found in description")
	ErrHashMismatch = errors.New("hash mismatch")
)

// Stamp summarizes the discovery document a collection was built from.
type Stamp struct {
	Source      string
	GeneratedAt time.Time
	Hash        string
	Interfaces  int
	Methods     int
}

// hashRegex finds the hash line written by Describe.
var hashRegex = regexp.MustCompile(`(?m)^Source SHA-256: ([0-9a-f]{64})$`)

// CalculateHash computes the SHA-256 hash of the raw discovery body.
func CalculateHash(raw []byte) string {
	hash := sha256.Sum256(raw)

	return hex.EncodeToString(hash[:])
}

// NewStamp builds a stamp for raw. Source should not carry credentials.
func NewStamp(source string, raw []byte, interfaces, methods int, at time.Time) *Stamp {
	return &Stamp{
		Source:      source,
		GeneratedAt: at.UTC(),
		Hash:        CalculateHash(raw),
		Interfaces:  interfaces,
		Methods:     methods,
	}
}

// Describe renders the stamp as a collection description.
func (s *Stamp) Describe() string {
	lines := []string{
		fmt.Sprintf("Generated from %s", s.Source),
		fmt.Sprintf("Generated at: %s", s.GeneratedAt.Format(time.RFC3339)),
		fmt.Sprintf("Interfaces: %d, methods: %d", s.Interfaces, s.Methods),
		fmt.Sprintf("Source SHA-256: %s", s.Hash),
	}

	return strings.Join(lines, "\n")
}

// ExtractHash returns the source hash recorded in a description.
func ExtractHash(description string) (string, error) {
	match := hashRegex.FindStringSubmatch(description)
	if len(match) < 2 {
		return "", ErrNoHashFound
	}

	return match[1], nil
}

// Verify checks that description was stamped from raw.
func Verify(description string, raw []byte) (bool, error) {
	recorded, err := ExtractHash(description)
	if err != nil {
		return false, err
	}

	calculated := CalculateHash(raw)
	if calculated != recorded {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, recorded, calculated)
	}

	return true, nil
}
