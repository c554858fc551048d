package domain

// Offering is a session-type card shown on the home and location pages
type Offering struct {
	SessionType   SessionType
	Title         string
	Description   string
	PriceLabel    string
	PortfolioSlug string
}

// Offerings is the fixed set of session cards
var Offerings = []Offering{
	{
		SessionType:   SessionFamily,
		Title:         "Family Heirloom Session",
		Description:   "One hour of fun at a beautiful location. We focus on play, laughter, and connection to get those genuine smiles. 40 edited images included.",
		PriceLabel:    "From $700",
		PortfolioSlug: "dallas-family-session",
	},
	{
		SessionType:   SessionMaternity,
		Title:         "Maternity Story",
		Description:   "Celebrate your journey with a relaxed one-hour session. Two outfit changes allowed to showcase your glow. Partners are always welcome.",
		PriceLabel:    "From $650",
		PortfolioSlug: "dallas-maternity-session",
	},
	{
		SessionType:   SessionBabyAnnouncement,
		Title:         "The Signature Milestone",
		Description:   "Share your big news! A one-hour creative session to capture the excitement of your growing family. Perfect for social media and keepsakes.",
		PriceLabel:    "From $850",
		PortfolioSlug: "dallas-baby-announcement",
	},
	{
		SessionType:   SessionMini,
		Title:         "Seasonal Mini Session",
		Description:   "Short, sweet, and simple. A 20-minute session at a set location delivering 10 beautiful images. Perfect for milestones and busy families.",
		PriceLabel:    "Spring and Fall dates",
		PortfolioSlug: "dallas-mini-session",
	},
}

// PortfolioCategory is one gallery page
type PortfolioCategory struct {
	Slug     string
	Title    string
	Intro    string
	Captions []string
}

// Path returns the gallery page path
func (p PortfolioCategory) Path() string {
	return "/portfolio/" + p.Slug
}

// Portfolio lists the gallery pages
var Portfolio = []PortfolioCategory{
	{
		Slug:  "dallas-family-session",
		Title: "Fun in the Field",
		Intro: "Golden hour moments with a growing family in the North Texas countryside.",
		Captions: []string{
			"Family photography session at Flower Mound park with kids playing and laughing",
			"Dallas family portrait in natural light",
			"Siblings walking hand in hand through tall grass",
		},
	},
	{
		Slug:  "dallas-maternity-session",
		Title: "Waiting for Baby",
		Intro: "Expecting joy in Frisco.",
		Captions: []string{
			"Maternity photography session in Frisco Texas",
			"Dallas maternity portrait at sunset",
		},
	},
	{
		Slug:  "dallas-baby-announcement",
		Title: "The Big News",
		Intro: "Sharing the surprise with style.",
		Captions: []string{
			"Baby announcement photography session",
			"Dallas pregnancy reveal portrait",
		},
	},
	{
		Slug:  "dallas-mini-session",
		Title: "Seasonal Minis",
		Intro: "Quick updates, timeless memories.",
		Captions: []string{
			"Fall mini session family photography Dallas",
			"Spring mini session among the wildflowers",
		},
	},
}

// LookupPortfolio finds a gallery by slug
func LookupPortfolio(slug string) (PortfolioCategory, bool) {
	for _, p := range Portfolio {
		if p.Slug == slug {
			return p, true
		}
	}
	return PortfolioCategory{}, false
}

// GeneralFAQs are shown on the home page
var GeneralFAQs = []FAQ{
	{
		Question: "My kids are super energetic/shy. Is that okay?",
		Answer:   "Absolutely! I have years of experience working with all personality types. We follow their lead, play games, and take breaks. The best photos often happen when kids are just being themselves.",
	},
	{
		Question: "Do you offer Mini Sessions year-round?",
		Answer:   "We offer Mini Sessions on specific dates each season (Spring and Fall). Contact us to grab a spot before they sell out!",
	},
	{
		Question: "What should we wear?",
		Answer:   "I recommend comfortable, coordinating outfits that make you feel like your best self. We can discuss styling options during your consultation.",
	},
	{
		Question: "Do you serve other areas like Frisco or Southlake?",
		Answer:   "Yes! While we are based in Flower Mound, we serve the entire DFW metroplex including Southlake, Plano, Highland Park, and McKinney. Sessions are available throughout these areas.",
	},
}
