package generator

import (
	"strings"
	"unicode/utf8"
)

// MaxCharacters is LinkedIn's limit for a post.
const MaxCharacters = 3000

type Stats struct {
	Words       int  `json:"words"`
	Characters  int  `json:"characters"`
	WithinLimit bool `json:"withinLimit"`
}

func Measure(text string) Stats {
	chars := utf8.RuneCountInString(text)
	return Stats{
		Words:       len(strings.Fields(text)),
		Characters:  chars,
		WithinLimit: chars <= MaxCharacters,
	}
}
