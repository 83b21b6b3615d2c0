// Package style derives a writing-style profile from uploaded posts. The
// analysis is simulated: only the average length is computed.
package style

import (
	"strings"

	"linkedink/internal/domain/apperr"
)

const (
	DefaultTone      = "Professional and inspirational"
	DefaultStructure = "Story-based with clear takeaways"
	// DefaultTargetLength is used for generation when no average is known.
	DefaultTargetLength = 250
)

const (
	CodeNoPosts = "no_posts"
	MsgNoPosts  = "Upload posts first"
)

var defaultCommonWords = []string{"excited", "share", "learn", "growth", "team"}

type Profile struct {
	Tone        string   `json:"tone"`
	AvgLength   int      `json:"avgLength"`
	CommonWords []string `json:"commonWords"`
	Structure   string   `json:"structure"`
}

// TargetLength is the length a generated post should aim for.
func (p Profile) TargetLength() int {
	if p.AvgLength > 0 {
		return p.AvgLength
	}
	return DefaultTargetLength
}

// Analyze joins posts with single spaces and counts the pieces between single
// spaces, so runs of spaces and newlines inside a post are not separators.
func Analyze(posts []string) (Profile, error) {
	if len(posts) == 0 {
		return Profile{}, apperr.Precondition(CodeNoPosts, MsgNoPosts)
	}

	tokens := len(strings.Split(strings.Join(posts, " "), " "))

	return Profile{
		Tone:        DefaultTone,
		AvgLength:   tokens / len(posts),
		CommonWords: append([]string(nil), defaultCommonWords...),
		Structure:   DefaultStructure,
	}, nil
}
