// Package dataset holds the built-in biography content and the integrity
// checks every loaded dataset must pass.
package dataset

import "github.com/leoxiewl/want-to-be/internal/models"

// Seed returns a fresh copy of the built-in dataset.
func Seed() []models.Person {
	return []models.Person{steveJobs(), elonMusk()}
}

func dateRef(s string) *models.Date {
	d := models.MustParseDate(s)
	return &d
}

func steveJobs() models.Person {
	return models.Person{
		ID:            "steve-jobs",
		Name:          "Steve Jobs",
		LocalizedName: "史蒂夫·乔布斯",
		Title:         "Co-founder of Apple",
		Description:   "Entrepreneur and product visionary who reshaped personal computing, animated film, music and mobile phones.",
		BirthDate:     models.MustParseDate("1955-02-24"),
		DeathDate:     dateRef("2011-10-05"),
		Avatar:        "/images/people/steve-jobs/avatar.jpg",
		CoverImage:    "/images/people/steve-jobs/cover.jpg",
		Tags:          []string{"innovation", "leadership", "design", "entrepreneurship", "technology"},
		Achievements: []string{
			"Co-founded Apple Computer",
			"Launched the Macintosh",
			"Built Pixar into a leading animation studio",
			"Introduced the iPod, iPhone and iPad",
		},
		Quote: "Stay hungry, stay foolish.",
		Milestones: []models.Milestone{
			{
				ID: "jobs-1955-birth", Year: 1955, Age: 0,
				Title:       "Born in San Francisco",
				Description: "Born and adopted by Paul and Clara Jobs, grew up in Mountain View.",
				Category:    models.CategoryBirth, Importance: models.ImportanceMedium,
			},
			{
				ID: "jobs-1972-reed", Year: 1972, Age: 17,
				Title:       "Enrolled at Reed College",
				Description: "Dropped out after one semester but kept auditing classes, including calligraphy.",
				Category:    models.CategoryEducation, Importance: models.ImportanceMedium,
				Insights:    []string{"Curiosity pays off in ways you cannot plan."},
			},
			{
				ID: "jobs-1976-apple", Year: 1976, Age: 21,
				Title:       "Founded Apple",
				Description: "Started Apple with Steve Wozniak in the family garage.",
				Category:    models.CategoryCareer, Importance: models.ImportanceCritical,
				Achievements: []string{"Apple I shipped", "Apple II followed in 1977"},
				Challenges:   []string{"No capital", "No manufacturing experience"},
			},
			{
				ID: "jobs-1984-macintosh", Year: 1984, Age: 29,
				Title:       "Launched the Macintosh",
				Description: "Brought the graphical user interface to a mass-market computer.",
				Category:    models.CategoryInnovation, Importance: models.ImportanceHigh,
			},
			{
				ID: "jobs-1985-ousted", Year: 1985, Age: 30,
				Title:       "Forced out of Apple",
				Description: "Lost a boardroom struggle and left the company he founded, then started NeXT.",
				Category:    models.CategorySetback, Importance: models.ImportanceCritical,
				Challenges:  []string{"Public humiliation", "Starting over"},
				Insights:    []string{"Being fired can free you to start again."},
			},
			{
				ID: "jobs-1986-pixar", Year: 1986, Age: 31,
				Title:       "Bought Pixar",
				Description: "Acquired the computer graphics division of Lucasfilm.",
				Category:    models.CategoryCareer, Importance: models.ImportanceHigh,
			},
			{
				ID: "jobs-1995-toy-story", Year: 1995, Age: 40,
				Title:       "Toy Story premiered",
				Description: "The first fully computer-animated feature film became a hit.",
				Category:    models.CategoryBreakthrough, Importance: models.ImportanceHigh,
			},
			{
				ID: "jobs-1997-return", Year: 1997, Age: 42,
				Title:       "Returned to Apple",
				Description: "Came back after the NeXT acquisition and took over as interim CEO.",
				Category:    models.CategoryLeadership, Importance: models.ImportanceCritical,
			},
			{
				ID: "jobs-2001-ipod", Year: 2001, Age: 46,
				Title:       "Introduced the iPod",
				Description: "Put a thousand songs in your pocket.",
				Category:    models.CategoryInnovation, Importance: models.ImportanceHigh,
			},
			{
				ID: "jobs-2003-diagnosis", Year: 2003, Age: 48,
				Title:       "Cancer diagnosis",
				Description: "Diagnosed with a pancreatic neuroendocrine tumor.",
				Category:    models.CategoryPersonal, Importance: models.ImportanceMedium,
			},
			{
				ID: "jobs-2005-stanford", Year: 2005, Age: 50,
				Title:       "Stanford commencement address",
				Description: "Told three stories about connecting the dots, love and loss, and death.",
				Category:    models.CategoryLegacy, Importance: models.ImportanceMedium,
				Insights:    []string{"You can only connect the dots looking backwards."},
			},
			{
				ID: "jobs-2007-iphone", Year: 2007, Age: 52,
				Title:       "Introduced the iPhone",
				Description: "Combined a phone, an iPod and an internet communicator in one device.",
				Category:    models.CategoryBreakthrough, Importance: models.ImportanceCritical,
			},
			{
				ID: "jobs-2010-ipad", Year: 2010, Age: 55,
				Title:       "Introduced the iPad",
				Description: "Opened a new category between the phone and the laptop.",
				Category:    models.CategoryInnovation, Importance: models.ImportanceMedium,
			},
			{
				ID: "jobs-2011-legacy", Year: 2011, Age: 56,
				Title:       "Passed away",
				Description: "Died in Palo Alto weeks after resigning as CEO.",
				Category:    models.CategoryLegacy, Importance: models.ImportanceHigh,
			},
		},
	}
}

func elonMusk() models.Person {
	return models.Person{
		ID:            "elon-musk",
		Name:          "Elon Musk",
		LocalizedName: "埃隆·马斯克",
		Title:         "Founder of SpaceX, CEO of Tesla",
		Description:   "Engineer and entrepreneur pushing reusable rockets, electric vehicles and brain-computer interfaces.",
		BirthDate:     models.MustParseDate("1971-06-28"),
		Avatar:        "/images/people/elon-musk/avatar.jpg",
		CoverImage:    "/images/people/elon-musk/cover.jpg",
		Tags:          []string{"innovation", "entrepreneurship", "risk-taking", "space", "technology"},
		Achievements: []string{
			"Co-founded Zip2 and X.com",
			"Founded SpaceX",
			"Led Tesla to mass-market electric cars",
			"Landed and reused orbital rocket boosters",
		},
		Quote: "When something is important enough, you do it even if the odds are not in your favor.",
		Milestones: []models.Milestone{
			{
				ID: "musk-1971-birth", Year: 1971, Age: 0,
				Title:       "Born in Pretoria",
				Description: "Born in Pretoria, South Africa; taught himself programming as a child.",
				Category:    models.CategoryBirth, Importance: models.ImportanceMedium,
			},
			{
				ID: "musk-1989-canada", Year: 1989, Age: 18,
				Title:       "Moved to Canada",
				Description: "Left South Africa and later transferred to the University of Pennsylvania.",
				Category:    models.CategoryPersonal, Importance: models.ImportanceMedium,
			},
			{
				ID: "musk-1995-zip2", Year: 1995, Age: 24,
				Title:       "Co-founded Zip2",
				Description: "Left a Stanford PhD program after two days to build online city guides.",
				Category:    models.CategoryCareer, Importance: models.ImportanceHigh,
			},
			{
				ID: "musk-1999-xcom", Year: 1999, Age: 28,
				Title:       "Founded X.com",
				Description: "The online bank that merged into PayPal.",
				Category:    models.CategoryCareer, Importance: models.ImportanceMedium,
			},
			{
				ID: "musk-2002-spacex", Year: 2002, Age: 31,
				Title:       "Founded SpaceX",
				Description: "Set out to cut the cost of access to space.",
				Category:    models.CategoryCareer, Importance: models.ImportanceCritical,
			},
			{
				ID: "musk-2004-tesla", Year: 2004, Age: 33,
				Title:       "Joined Tesla",
				Description: "Led the Series A round and became chairman.",
				Category:    models.CategoryLeadership, Importance: models.ImportanceHigh,
			},
			{
				ID: "musk-2008-brink", Year: 2008, Age: 37,
				Title:       "Near bankruptcy",
				Description: "Three failed Falcon 1 launches and a cash crunch at Tesla.",
				Category:    models.CategorySetback, Importance: models.ImportanceCritical,
				Challenges:  []string{"Three failed launches", "Financial crisis"},
			},
			{
				ID: "musk-2008-orbit", Year: 2008, Age: 37,
				Title:       "Falcon 1 reached orbit",
				Description: "The fourth launch made SpaceX the first private company to reach orbit with a liquid-fueled rocket.",
				Category:    models.CategoryBreakthrough, Importance: models.ImportanceCritical,
				Insights:    []string{"Persistence through failure."},
			},
			{
				ID: "musk-2012-dragon", Year: 2012, Age: 41,
				Title:       "Dragon docked with the ISS",
				Description: "First commercial spacecraft to berth with the space station.",
				Category:    models.CategoryBreakthrough, Importance: models.ImportanceHigh,
			},
			{
				ID: "musk-2015-landing", Year: 2015, Age: 44,
				Title:       "First orbital booster landing",
				Description: "A Falcon 9 first stage landed back at Cape Canaveral.",
				Category:    models.CategoryInnovation, Importance: models.ImportanceCritical,
			},
			{
				ID: "musk-2016-neuralink", Year: 2016, Age: 45,
				Title:       "Co-founded Neuralink",
				Description: "Started work on implantable brain-computer interfaces.",
				Category:    models.CategoryInnovation, Importance: models.ImportanceMedium,
			},
			{
				ID: "musk-2020-crew-dragon", Year: 2020, Age: 49,
				Title:       "Crew Dragon flew astronauts",
				Description: "Returned crewed orbital launches to American soil.",
				Category:    models.CategoryBreakthrough, Importance: models.ImportanceHigh,
			},
		},
	}
}
