package landing

// Card is one icon/title/description tile. Icon is a lucide icon name.
type Card struct {
	Icon        string
	Title       string
	Description string
}

type Question struct {
	Question string
	Answer   string
}

var PainPoints = []Card{
	{Icon: "message-square", Title: "Running out of engaging tweet ideas?"},
	{Icon: "clock", Title: "Inconsistent posting schedule?"},
	{Icon: "trending-down", Title: "Low engagement rates?"},
}

var CoreFeatures = []Card{
	{
		Icon:        "sparkles",
		Title:       "AI Tweet Recommendations",
		Description: "Get personalized suggestions for tweet content that resonates with your audience.",
	},
	{
		Icon:        "clock",
		Title:       "Smart Scheduling",
		Description: "Schedule tweets at optimal times based on your audience's engagement patterns.",
	},
	{
		Icon:        "bar-chart-3",
		Title:       "Engagement Analytics",
		Description: "Deep insights into your tweet performance with actionable improvement suggestions.",
	},
}

var Steps = []Card{
	{Icon: "file-text", Title: "Enter your SaaS details", Description: "Tell us about your product and target audience"},
	{Icon: "sparkles", Title: "Get tweet suggestions", Description: "Receive AI-generated tweet ideas in seconds"},
	{Icon: "clock", Title: "Schedule and post", Description: "One-click scheduling at optimal times"},
	{Icon: "bar-chart", Title: "Track and optimize", Description: "Monitor performance and improve results"},
}

var FAQs = []Question{
	{
		Question: "How does the AI generate tweets?",
		Answer:   "Our AI analyzes successful SaaS marketing content and your product details to generate engaging, relevant tweets that resonate with your target audience.",
	},
	{
		Question: "Is there a free trial?",
		Answer:   "Yes! Once we launch, all waitlist members will get exclusive access to a free trial period to test out all premium features.",
	},
	{
		Question: "What social media platforms are supported?",
		Answer:   "Currently, we're focused on X (formerly Twitter) to provide the best possible experience. We plan to expand to other platforms in the future.",
	},
}
