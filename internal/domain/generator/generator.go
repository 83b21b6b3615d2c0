// Package generator produces LinkedIn post drafts. Nothing here calls a model:
// drafts are assembled from fixed fragments with the topic interpolated.
package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const DefaultLanguage = "English"

// Languages offered by the dashboard. The generator does not use the language
// when writing a draft.
var Languages = []string{"English", "Hindi", "Spanish", "French", "German"}

var intros = []string{
	"🚀 Excited to share some thoughts on %s!",
	"I've been reflecting on %s lately, and wanted to share what I've learned.",
	"Let me tell you about %s...",
	"Here's my take on %s:",
}

var bodies = []string{
	"\n\nOver the past few months, I've had the opportunity to dive deep into this area. " +
		"What I discovered challenged my initial assumptions and taught me valuable lessons.\n\n" +
		"Here are 3 key insights:\n\n" +
		"1. The fundamentals matter more than we think\n" +
		"2. Consistency beats intensity every time  \n" +
		"3. Learning from others accelerates growth\n\n",
	"\n\nThis journey has been incredibly rewarding. Through trial and error, collaboration, " +
		"and continuous learning, I've gained perspectives I never expected.\n\n" +
		"The biggest lesson? Progress isn't always linear, but every step forward counts.\n\n",
	"\n\nAfter countless hours of work and learning, here's what stands out:\n\n" +
		"→ Understanding the \"why\" is crucial\n" +
		"→ Community support makes all the difference\n" +
		"→ Patience and persistence pay off\n\n",
}

var closings = []string{
	"What's your experience with this? I'd love to hear your thoughts in the comments! 💬\n\n" +
		"#ProfessionalGrowth #Learning #CareerDevelopment",
	"Would love to hear your perspective on this. Drop a comment below! 👇\n\n" +
		"#Growth #Innovation #Leadership",
	"Let's continue this conversation. What are your thoughts?\n\n" +
		"#CareerGrowth #ProfessionalDevelopment #Learning",
}

// Generate picks one intro, body and closing uniformly at random from rng.
// language is accepted for the caller's bookkeeping and ignored.
func Generate(rng *rand.Rand, topic, language string) string {
	var b strings.Builder
	fmt.Fprintf(&b, intros[rng.IntN(len(intros))], topic)
	b.WriteString(bodies[rng.IntN(len(bodies))])
	b.WriteString(closings[rng.IntN(len(closings))])
	return b.String()
}

// Seeded returns a deterministic source for seed. Rendering the same request
// twice with it yields the same draft.
func Seeded(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// Request is what the dashboard records for the viewer: the inputs of the
// last generation and when it happened, in unix milliseconds.
type Request struct {
	Topic     string `json:"topic"`
	Language  string `json:"language"`
	Timestamp int64  `json:"timestamp"`
}

// Render draws the draft for r, seeded by its timestamp.
func (r Request) Render() string {
	return Generate(Seeded(r.Timestamp), r.Topic, r.Language)
}
