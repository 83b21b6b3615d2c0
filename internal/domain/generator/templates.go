package generator

type Template struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

var templates = []Template{
	{
		ID:       1,
		Title:    "Career Milestone",
		Category: "Achievement",
		Content: "🎉 Excited to share a personal milestone!\n\n" +
			"After [X months/years] of dedication and hard work, I'm thrilled to announce [your achievement].\n\n" +
			"Key lessons learned along the way:\n" +
			"• Consistency beats perfection\n" +
			"• Community support is invaluable\n" +
			"• Growth happens outside your comfort zone\n\n" +
			"Thank you to everyone who supported me on this journey. Here's to the next chapter! 🚀\n\n" +
			"#CareerGrowth #ProfessionalDevelopment #Milestone",
	},
	{
		ID:       2,
		Title:    "Thought Leadership",
		Category: "Insights",
		Content: "💡 A perspective on [topic] that's been on my mind...\n\n" +
			"The industry is rapidly evolving, and I believe we need to shift our thinking about [specific aspect].\n\n" +
			"Here's why:\n\n" +
			"1. [First reason/insight]\n" +
			"2. [Second reason/insight]\n" +
			"3. [Third reason/insight]\n\n" +
			"What's your take? I'd love to hear different perspectives in the comments.\n\n" +
			"#ThoughtLeadership #Innovation #FutureOfWork",
	},
	{
		ID:       3,
		Title:    "Team Success",
		Category: "Leadership",
		Content: "🙌 Proud team moment!\n\n" +
			"Our team just [accomplished something significant], and I couldn't be more proud of everyone involved.\n\n" +
			"What made this success possible:\n" +
			"✨ Clear communication\n" +
			"✨ Trust and autonomy\n" +
			"✨ Celebrating small wins\n\n" +
			"Success is never a solo achievement. Thank you to my incredible team!\n\n" +
			"#Teamwork #Leadership #Success",
	},
	{
		ID:       4,
		Title:    "Industry Insights",
		Category: "Trends",
		Content: "📊 3 trends shaping [your industry] in 2025:\n\n" +
			"1️⃣ [First trend]\nWhat it means: [brief explanation]\n\n" +
			"2️⃣ [Second trend]\nWhy it matters: [brief explanation]\n\n" +
			"3️⃣ [Third trend]\nThe opportunity: [brief explanation]\n\n" +
			"Are you seeing these trends in your work? Let's discuss! 👇\n\n" +
			"#IndustryTrends #Innovation #BusinessInsights",
	},
	{
		ID:       5,
		Title:    "Lessons Learned",
		Category: "Experience",
		Content: "🎯 5 lessons from [X years] in [your field]:\n\n" +
			"1. [Lesson one - keep it concise]\n" +
			"2. [Lesson two - keep it concise]\n" +
			"3. [Lesson three - keep it concise]\n" +
			"4. [Lesson four - keep it concise]\n" +
			"5. [Lesson five - keep it concise]\n\n" +
			"Which resonates most with your experience? Let me know below! 💬\n\n" +
			"#CareerAdvice #ProfessionalGrowth #LessonsLearned",
	},
	{
		ID:       6,
		Title:    "Project Launch",
		Category: "Announcement",
		Content: "🚀 Excited to announce: [Project/Product Name]!\n\n" +
			"After months of hard work, we're finally launching [brief description].\n\n" +
			"What makes it special:\n" +
			"→ [Key feature/benefit 1]\n" +
			"→ [Key feature/benefit 2]\n" +
			"→ [Key feature/benefit 3]\n\n" +
			"This wouldn't be possible without our amazing team and supporters. Thank you! 🙏\n\n" +
			"Check it out and let me know what you think: [Link]\n\n" +
			"#ProductLaunch #Innovation #Entrepreneurship",
	},
}

// Templates returns a copy of the template gallery.
func Templates() []Template {
	return append([]Template(nil), templates...)
}

// TemplateByID returns the template with id, if any.
func TemplateByID(id int) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
