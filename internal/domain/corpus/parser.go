// Package corpus validates and stores the posts a user uploads as style
// samples.
package corpus

import (
	"strings"

	"linkedink/internal/domain/apperr"
)

const (
	Delimiter = "---"
	MinPosts  = 3
	// MaxPosts caps how many posts one upload keeps on the backend.
	MaxPosts = 15
)

const (
	CodeEmptyInput = "empty_input"
	CodeNoPosts    = "no_posts"
	CodeTooFew     = "too_few_posts"
)

const (
	MsgEmptyInput = "Please paste at least one post"
	MsgNoPosts    = "No valid posts found. Make sure to separate posts with ---"
	MsgTooFew     = "Please upload at least 3 posts for better style analysis"
)

// ParseBlob splits raw on every occurrence of Delimiter, trims the fragments
// and drops the blank ones. A delimiter inside a line still splits.
func ParseBlob(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, apperr.Validation(CodeEmptyInput, MsgEmptyInput)
	}

	var posts []string
	for _, fragment := range strings.Split(raw, Delimiter) {
		if p := strings.TrimSpace(fragment); p != "" {
			posts = append(posts, p)
		}
	}

	switch {
	case len(posts) == 0:
		return nil, apperr.Validation(CodeNoPosts, MsgNoPosts)
	case len(posts) < MinPosts:
		return nil, apperr.Validation(CodeTooFew, MsgTooFew)
	}

	return posts, nil
}
