package questiongen

import (
	"time"

	"github.com/abhisek/actprep/internal/progress"
)

// SampleSet returns a built-in practice set for the section, used when no
// LLM provider is configured so practice still works offline.
func SampleSet(section string) *QuestionSet {
	set, ok := sampleSets[section]
	if !ok {
		set = sampleSets[SectionEnglish]
	}
	out := *set
	out.GeneratedAt = time.Now()
	return &out
}

var sampleSets = map[string]*QuestionSet{
	SectionEnglish: {
		Topic:   "the history of national parks",
		Passage: "In 1872, Congress established Yellowstone as the first national park, it set aside more than two million acres of wilderness. The decision was not without controversy. Many legislators, believing the land worthless for agriculture, saw little harm in the gesture; others argued that public land should be opened to settlement. Over the following decades, conservationists such as John Muir campaigned tireless for further protections, and by 1916 the National Park Service was created to manage a growing system.",
		Questions: []progress.Question{
			{
				ID:          1,
				Text:        "Which choice best corrects the underlined portion: \"the first national park, it set aside\"?",
				Options:     []string{"NO CHANGE", "park, setting aside", "park, and setting aside", "park it set aside"},
				Correct:     1,
				Explanation: "The original is a comma splice. A participial phrase joins the clauses grammatically.",
				Skill:       "punctuation",
			},
			{
				ID:          2,
				Text:        "Which choice best corrects \"campaigned tireless for further protections\"?",
				Options:     []string{"NO CHANGE", "campaigned more tireless", "campaigned tirelessly", "tireless campaigned"},
				Correct:     2,
				Explanation: "An adverb, not an adjective, must modify the verb \"campaigned\".",
				Skill:       "grammar",
			},
			{
				ID:          3,
				Text:        "Given that all are true, which sentence would best conclude the passage?",
				Options:     []string{"Yellowstone remains popular today.", "Today the system protects more than 400 sites across the country.", "John Muir also founded the Sierra Club.", "Congress meets in Washington, D.C."},
				Correct:     1,
				Explanation: "The passage traces the system's growth, so a closing fact about its present scope follows the established focus.",
				Skill:       "sentence-flow",
			},
			{
				ID:          4,
				Text:        "Which choice most effectively replaces the wordy phrase \"saw little harm in the gesture\"?",
				Options:     []string{"NO CHANGE", "did not object", "were of the opinion that no harm would result from it", "saw, in the gesture, little harm"},
				Correct:     1,
				Explanation: "\"Did not object\" conveys the same meaning in the fewest words.",
				Skill:       "wordiness",
			},
		},
	},
	SectionMath: {
		Topic: "algebra and geometry fundamentals",
		Questions: []progress.Question{
			{
				ID:          1,
				Text:        "If 3x - 7 = 14, what is the value of x?",
				Options:     []string{"3", "7", "21/3", "7/3"},
				Correct:     1,
				Explanation: "Add 7 to both sides: 3x = 21, so x = 7.",
				Skill:       "algebra",
			},
			{
				ID:          2,
				Text:        "A rectangle has length 12 and width 5. What is the length of its diagonal?",
				Options:     []string{"13", "17", "60", "7"},
				Correct:     0,
				Explanation: "By the Pythagorean theorem, sqrt(144 + 25) = sqrt(169) = 13.",
				Skill:       "geometry",
			},
			{
				ID:          3,
				Text:        "The mean of five numbers is 20. Four of them are 10, 15, 25, and 30. What is the fifth?",
				Options:     []string{"15", "20", "25", "30"},
				Correct:     1,
				Explanation: "The total is 100; the four known numbers sum to 80, leaving 20.",
				Skill:       "statistics",
			},
			{
				ID:          4,
				Text:        "If sin(t) = 3/5 and t is in the first quadrant, what is cos(t)?",
				Options:     []string{"3/4", "4/5", "5/4", "5/3"},
				Correct:     1,
				Explanation: "cos(t) = sqrt(1 - 9/25) = sqrt(16/25) = 4/5 in the first quadrant.",
				Skill:       "trigonometry",
			},
		},
	},
	SectionReading: {
		Topic:   "the exploration of the deep ocean",
		Passage: "When the research submersible Alvin first carried scientists to the hydrothermal vents of the Galapagos Rift in 1977, biologists expected a barren seafloor. Instead they found dense colonies of tube worms, clams, and shrimp thriving in total darkness. The discovery unsettled a long-held assumption: that all life depends, directly or indirectly, on sunlight. Here, bacteria converted vent chemicals into energy, anchoring a food web that owed nothing to photosynthesis. In the decades since, chemosynthetic communities have been found at vents and seeps around the world, reshaping estimates of where, and how, life might persist.",
		Questions: []progress.Question{
			{
				ID:          1,
				Text:        "The main purpose of the passage is to:",
				Options:     []string{"describe a discovery that changed an assumption about life", "explain how submersibles are engineered", "argue that photosynthesis is unimportant", "recount the history of the Galapagos Islands"},
				Correct:     0,
				Explanation: "The passage centers on the vent discovery and the assumption it overturned.",
				Skill:       "main-idea",
			},
			{
				ID:          2,
				Text:        "It can most reasonably be inferred that before 1977, biologists believed deep seafloors were:",
				Options:     []string{"rich in undiscovered species", "largely lifeless", "warmer than surface waters", "impossible to reach"},
				Correct:     1,
				Explanation: "The scientists \"expected a barren seafloor\", implying a belief in little deep-sea life.",
				Skill:       "inference",
			},
			{
				ID:          3,
				Text:        "As used in the passage, \"anchoring\" most nearly means:",
				Options:     []string{"mooring", "supporting", "weighing down", "stopping"},
				Correct:     1,
				Explanation: "The bacteria support the base of the food web.",
				Skill:       "vocabulary",
			},
			{
				ID:          4,
				Text:        "According to the passage, chemosynthetic communities have been found:",
				Options:     []string{"only at the Galapagos Rift", "at vents and seeps around the world", "in sunlit shallows", "nowhere since 1977"},
				Correct:     1,
				Explanation: "The final sentence states they occur at vents and seeps worldwide.",
				Skill:       "detail-comprehension",
			},
		},
	},
	SectionScience: {
		Topic:   "an experiment on plant growth and light exposure",
		Passage: "Students grew 40 bean seedlings under four light conditions (10 seedlings each): full sunlight, 12 hours of light, 6 hours of light, and darkness. All other conditions were held constant. After three weeks, mean heights were 21 cm, 18 cm, 11 cm, and 4 cm respectively, and mean leaf counts were 9, 8, 5, and 2.",
		Questions: []progress.Question{
			{
				ID:          1,
				Text:        "Which variable did the students deliberately change between groups?",
				Options:     []string{"Soil type", "Hours of light exposure", "Seedling species", "Watering schedule"},
				Correct:     1,
				Explanation: "Light exposure is the independent variable; all else was held constant.",
				Skill:       "experimental-design",
			},
			{
				ID:          2,
				Text:        "Based on the data, what is the relationship between light exposure and mean height?",
				Options:     []string{"Height decreases as light increases", "Height increases as light increases", "Height is unrelated to light", "Height is greatest in darkness"},
				Correct:     1,
				Explanation: "Mean height rises from 4 cm in darkness to 21 cm in full sunlight.",
				Skill:       "data-interpretation",
			},
			{
				ID:          3,
				Text:        "A fifth group grown under 9 hours of light would most likely have a mean height closest to:",
				Options:     []string{"4 cm", "8 cm", "15 cm", "22 cm"},
				Correct:     2,
				Explanation: "9 hours falls between the 6-hour (11 cm) and 12-hour (18 cm) groups.",
				Skill:       "graph-analysis",
			},
			{
				ID:          4,
				Text:        "The darkness group primarily serves as:",
				Options:     []string{"a control", "a replicate", "an outlier", "a dependent variable"},
				Correct:     0,
				Explanation: "The no-light group provides the baseline against which treatments are compared.",
				Skill:       "scientific-method",
			},
		},
	},
}
