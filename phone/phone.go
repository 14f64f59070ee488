// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package phone

import (
	"errors"
	"strings"
)

// Length is the number of digits in a phone number
const Length = 8

// Policy selects how a phone number is located in notification text
type Policy string

const (
	// PolicyPositional reads the 8 characters right after the first "du "
	PolicyPositional Policy = "positional"
	// PolicyPattern takes the first run of exactly 8 digits anywhere in the text
	PolicyPattern Policy = "pattern"
)

const positionalMarker = "du "

var ErrUnknownPolicy = errors.New("unknown phone policy")

// ParsePolicy converts a configuration value into a Policy
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyPositional, PolicyPattern:
		return p, nil
	default:
		return "", ErrUnknownPolicy
	}
}

// Extractor finds a phone number in free text
type Extractor interface {
	Extract(text string) (string, bool)
}

// NewExtractor returns the extractor for the given policy
func NewExtractor(p Policy) (Extractor, error) {
	switch p {
	case PolicyPositional:
		return positional{}, nil
	case PolicyPattern:
		return pattern{}, nil
	default:
		return nil, ErrUnknownPolicy
	}
}

type positional struct{}

func (positional) Extract(text string) (string, bool) {
	i := strings.Index(text, positionalMarker)
	if i < 0 {
		return "", false
	}
	start := i + len(positionalMarker)
	if start+Length > len(text) {
		return "", false
	}
	candidate := text[start : start+Length]
	if !Valid(candidate) {
		return "", false
	}
	return candidate, true
}

type pattern struct{}

func (pattern) Extract(text string) (string, bool) {
	for i := 0; i < len(text); {
		if !isDigit(text[i]) {
			i++
			continue
		}
		// Walk the whole run so longer numbers are never split
		j := i
		for j < len(text) && isDigit(text[j]) {
			j++
		}
		if j-i == Length {
			return text[i:j], true
		}
		i = j
	}
	return "", false
}

// Valid reports whether s is exactly 8 ASCII digits
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
