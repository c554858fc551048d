package domain

// Cities is the service-area table. Order matches the areas-served list.
var Cities = []CityProfile{
	{
		Slug:        "flower-mound",
		DisplayName: "Flower Mound",
		Description: "Our home base. Flower Mound families get open fields, lakeside light and tree-lined trails only minutes from home.",
		Locations: []NamedLocation{
			{Name: "Flower Mound Parkway Fields", Description: "Tall grass and wide open sky for golden hour family sessions."},
			{Name: "Twin Coves Park", Description: "Lake Grapevine shoreline with soft evening light on the water."},
			{Name: "Heritage Park", Description: "Shaded paths and wooden bridges that work in every season."},
		},
		FAQs: []FAQ{
			{Question: "Where do Flower Mound sessions usually take place?", Answer: "Most families choose the Parkway fields or Twin Coves Park. In-home sessions are also available for newborns and milestones."},
			{Question: "Is there a travel fee for Flower Mound?", Answer: "No. Flower Mound is home, so travel is always included."},
			{Question: "What time of day do you recommend?", Answer: "The hour before sunset gives the warmest, most flattering light for families with little ones."},
		},
	},
	{
		Slug:        "frisco",
		DisplayName: "Frisco",
		Description: "From manicured parks to wildflower fields, Frisco offers polished and natural backdrops for growing families.",
		Locations: []NamedLocation{
			{Name: "Frisco Commons Park", Description: "Rolling lawns and a quiet pond surrounded by mature trees."},
			{Name: "Frisco Square", Description: "Clean urban lines for a modern, editorial family portrait."},
			{Name: "Northeast Community Park", Description: "Open fields that glow at sunset, ideal for playful sessions."},
		},
		FAQs: []FAQ{
			{Question: "Do you photograph families in Frisco?", Answer: "Yes. Frisco is one of our most requested areas and sessions are available year-round."},
			{Question: "Which Frisco location is best for toddlers?", Answer: "Frisco Commons Park has plenty of space to run and shaded spots for breaks."},
			{Question: "Can we book a maternity session in Frisco?", Answer: "Absolutely. Many of our maternity clients choose Frisco for its open fields and evening light."},
		},
	},
	{
		Slug:        "southlake",
		DisplayName: "Southlake",
		Description: "Southlake sessions pair elegant town square architecture with sunset fields for heirloom portraits.",
		Locations: []NamedLocation{
			{Name: "Southlake Town Square", Description: "Brick walkways and classic facades for a timeless look."},
			{Name: "Bob Jones Nature Center", Description: "Trails and prairie grass framed by old oaks."},
			{Name: "Bicentennial Park", Description: "Open lawns and shaded benches for relaxed family groupings."},
		},
		FAQs: []FAQ{
			{Question: "Do you offer sessions in Southlake?", Answer: "Yes. Southlake is a short drive from our Flower Mound studio and sessions are available throughout the year."},
			{Question: "Is Town Square too busy for photos?", Answer: "We schedule early mornings or weekday evenings so the square stays calm and uncrowded."},
		},
	},
	{
		Slug:        "plano",
		DisplayName: "Plano",
		Description: "Plano families enjoy arboretum gardens and creekside trails that make every season feel fresh.",
		Locations: []NamedLocation{
			{Name: "Arbor Hills Nature Preserve", Description: "Prairie overlooks and wooded creek paths."},
			{Name: "Historic Downtown Plano", Description: "Vintage storefronts and brick streets with character."},
			{Name: "Oak Point Park", Description: "Lakeside views and open meadows for larger family groups."},
		},
		FAQs: []FAQ{
			{Question: "Do you travel to Plano?", Answer: "Yes. Plano is part of our regular service area across the DFW metroplex."},
			{Question: "Can extended family join a Plano session?", Answer: "Of course. Oak Point Park has room for grandparents, cousins and everyone in between."},
		},
	},
	{
		Slug:        "mckinney",
		DisplayName: "McKinney",
		Description: "Historic charm and wide open farmland make McKinney a favorite for relaxed, storytelling sessions.",
		Locations: []NamedLocation{
			{Name: "Historic Downtown McKinney", Description: "Charming square with colorful storefronts and string lights."},
			{Name: "Towne Lake Park", Description: "Water views and walking paths in soft evening light."},
			{Name: "Erwin Park", Description: "Wooded trails and rustic fences for a countryside feel."},
		},
		FAQs: []FAQ{
			{Question: "Do you photograph families in McKinney?", Answer: "Yes. McKinney sessions are available throughout the year."},
			{Question: "What should we wear for a rustic McKinney location?", Answer: "Soft neutrals and textured fabrics complement the fields and wooden fences beautifully."},
		},
	},
	{
		Slug:        "grapevine",
		DisplayName: "Grapevine",
		Description: "Grapevine brings lakeside sunsets and a storybook Main Street just down the road from Flower Mound.",
		Locations: []NamedLocation{
			{Name: "Grapevine Lake", Description: "Sandy shoreline and glowing water at golden hour."},
			{Name: "Historic Main Street", Description: "Classic architecture and seasonal decorations."},
			{Name: "Meadowmere Park", Description: "Open grass and lake breezes for playful sessions."},
		},
		FAQs: []FAQ{
			{Question: "Do you offer mini sessions in Grapevine?", Answer: "Seasonal mini sessions are often hosted near Grapevine Lake. Join the list to hear about upcoming dates."},
			{Question: "Is Grapevine included in the standard service area?", Answer: "Yes. There is no travel fee for Grapevine sessions."},
		},
	},
	{
		Slug:        "coppell",
		DisplayName: "Coppell",
		Description: "Quiet neighborhoods and nature trails give Coppell sessions a calm, intimate feeling.",
		Locations: []NamedLocation{
			{Name: "Coppell Nature Park", Description: "Shaded trails along the Elm Fork of the Trinity River."},
			{Name: "Andrew Brown Park", Description: "Open fields and a pond for relaxed family play."},
			{Name: "Old Town Coppell", Description: "Farmhouse-inspired architecture and cozy storefronts."},
		},
		FAQs: []FAQ{
			{Question: "Do you serve Coppell families?", Answer: "Yes. Coppell is just minutes from our Flower Mound base."},
			{Question: "Can we do an in-home session in Coppell?", Answer: "Yes. In-home lifestyle sessions are available for newborns and baby announcements."},
		},
	},
	{
		Slug:        "colleyville",
		DisplayName: "Colleyville",
		Description: "Colleyville offers a peaceful mix of nature preserves and elegant estates for refined family portraits.",
		Locations: []NamedLocation{
			{Name: "Colleyville Nature Center", Description: "Ponds, prairie grass and winding trails."},
			{Name: "City Park", Description: "Shade trees and open lawns for all ages."},
			{Name: "McPherson Park", Description: "A quiet neighborhood park with soft, even light."},
		},
		FAQs: []FAQ{
			{Question: "Do you photograph sessions in Colleyville?", Answer: "Yes. Colleyville is part of our core service area."},
			{Question: "When is the best season for Colleyville sessions?", Answer: "Spring wildflowers and fall color both make the Nature Center especially beautiful."},
		},
	},
	{
		Slug:        "highland-park",
		DisplayName: "Highland Park",
		Description: "Highland Park sessions feature classic architecture, creek paths and timeless, elegant backdrops.",
		Locations: []NamedLocation{
			{Name: "Turtle Creek", Description: "Stone bridges and creekside greenery."},
			{Name: "Highland Park Village", Description: "Spanish-inspired architecture for an editorial look."},
			{Name: "Flippen Park", Description: "A charming neighborhood park with mature trees."},
		},
		FAQs: []FAQ{
			{Question: "Do you travel to Highland Park?", Answer: "Yes. We regularly photograph families in Highland Park and University Park."},
			{Question: "Do Highland Park locations require permits?", Answer: "Some private venues do. We handle scouting and any permissions before your session."},
		},
	},
	{
		Slug:        "prosper",
		DisplayName: "Prosper",
		Description: "Prosper's open farmland and new parks are perfect for sunset sessions with room to roam.",
		Locations: []NamedLocation{
			{Name: "Frontier Park", Description: "Wide open lawns and a pond with sunset views."},
			{Name: "Downtown Prosper", Description: "Small-town charm for a classic family portrait."},
			{Name: "Windsong Ranch Fields", Description: "Wildflower fields and rolling prairie."},
		},
		FAQs: []FAQ{
			{Question: "Do you offer sessions in Prosper?", Answer: "Yes. Prosper is part of our North Dallas service area."},
			{Question: "Is Prosper good for large family groups?", Answer: "Frontier Park has plenty of space for extended family portraits."},
		},
	},
}
