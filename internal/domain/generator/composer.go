package generator

import (
	"fmt"
	"strings"

	"linkedink/internal/domain/apperr"
)

type Tone string

const (
	ToneProfessional      Tone = "professional"
	ToneCasual            Tone = "casual"
	ToneInspirational     Tone = "inspirational"
	ToneThoughtLeadership Tone = "thought-leadership"
)

var Tones = []Tone{ToneProfessional, ToneCasual, ToneInspirational, ToneThoughtLeadership}

type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

var Lengths = []Length{LengthShort, LengthMedium, LengthLong}

// Describe returns the hint shown next to a length choice.
func (l Length) Describe() string {
	switch l {
	case LengthShort:
		return "Quick & concise (50-100 words)"
	case LengthLong:
		return "In-depth content (200-300 words)"
	default:
		return "Balanced depth (100-200 words)"
	}
}

const composeHashtags = "\n\n#LinkedInTips #CareerGrowth #ProfessionalDevelopment"

type Options struct {
	Topic    string
	Tone     Tone
	Length   Length
	Emojis   bool
	Hashtags bool
}

func DefaultOptions(topic string) Options {
	return Options{
		Topic:    topic,
		Tone:     ToneProfessional,
		Length:   LengthMedium,
		Emojis:   true,
		Hashtags: true,
	}
}

func ParseTone(s string) (Tone, error) {
	for _, t := range Tones {
		if string(t) == s {
			return t, nil
		}
	}
	return "", apperr.Validation("invalid_tone", fmt.Sprintf("Unknown tone %q", s))
}

func ParseLength(s string) (Length, error) {
	for _, l := range Lengths {
		if string(l) == s {
			return l, nil
		}
	}
	return "", apperr.Validation("invalid_length", fmt.Sprintf("Unknown length %q", s))
}

// Compose writes a draft from explicit options. Unknown tones read as
// thought leadership and unknown lengths as short.
func Compose(o Options) (string, error) {
	if strings.TrimSpace(o.Topic) == "" {
		return "", apperr.Validation(CodeEmptyTopic, MsgEmptyTopic)
	}

	emoji := func(s string) string {
		if o.Emojis {
			return s
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(emoji("🚀 "))
	b.WriteString("Excited to share some thoughts on: " + o.Topic + "\n\n")

	switch o.Tone {
	case ToneProfessional:
		b.WriteString("In my experience, this topic is crucial for professional growth. Here are three key insights I've learned:\n\n")
		b.WriteString("1. Understanding the fundamentals is essential\n")
		b.WriteString("2. Continuous learning drives success\n")
		b.WriteString("3. Collaboration amplifies impact\n\n")
	case ToneCasual:
		b.WriteString("So I've been thinking about this lately, and wanted to share what I've learned.\n\n")
		b.WriteString("Honestly, it's been quite a journey! The biggest takeaway? Stay curious and keep pushing forward. ")
	case ToneInspirational:
		b.WriteString("Every challenge is an opportunity in disguise. " + emoji("✨") + "\n\n")
		b.WriteString("This reminded me that success isn't just about reaching the destination, it's about who we become along the way. ")
	default:
		b.WriteString("Let me share a perspective that might challenge conventional thinking.\n\n")
		b.WriteString("The industry often focuses on X, but we should be paying attention to Y. Here's why this matters: ")
	}

	switch o.Length {
	case LengthLong:
		b.WriteString("\n\nWhat's your take on this? I'd love to hear your experiences in the comments below. ")
		b.WriteString(emoji("💬") + "\n\nLet's learn from each other and grow together!")
	case LengthMedium:
		b.WriteString("\n\nWhat do you think? Drop your thoughts below! " + emoji("💬"))
	default:
		b.WriteString("\n\nThoughts?")
	}

	if o.Hashtags {
		b.WriteString(composeHashtags)
	}

	return b.String(), nil
}
