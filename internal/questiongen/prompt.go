package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert ACT test creator. Generate high-quality practice questions that match the style, difficulty calibration, and answer-choice conventions of the real ACT.`

// topics is a varied pool for passage subjects so repeated sets stay fresh.
var topics = []string{
	"the discovery of DNA structure by Watson and Crick",
	"the development of the internet from ARPANET to today",
	"the construction of the Panama Canal",
	"the evolution of jazz music in America",
	"the discovery of penicillin and antibiotics",
	"the rise of social media platforms",
	"the development of renewable energy technologies",
	"the history of the Olympic Games",
	"the invention of the printing press",
	"the exploration of Mars by rovers",
	"the development of artificial intelligence",
	"the conservation of endangered species",
	"the history of video game technology",
	"the discovery of ancient Egyptian tombs",
	"the development of vaccines and immunization",
	"the evolution of smartphone technology",
	"the history of women's suffrage movement",
	"the development of electric vehicles",
	"the exploration of the deep ocean",
	"the history of space telescopes",
	"climate change and polar ice caps",
	"the development of cryptocurrency",
	"the history of national parks",
	"the evolution of film and cinema",
	"the discovery of vitamins and nutrition",
	"the development of robotics in manufacturing",
	"the history of the civil rights movement",
	"the evolution of computer programming languages",
	"the discovery of tectonic plates",
	"the development of gene therapy",
}

// skillDescriptions expands skill tags into prompt-ready descriptions.
// Unknown tags pass through unchanged; the vocabulary is open.
var skillDescriptions = map[string]string{
	// English
	"punctuation":   "comma usage, semicolons, colons, apostrophes",
	"verb-tense":    "verb tense consistency, subject-verb agreement, perfect tenses",
	"sentence-flow": "transitions, logical connectors, sentence ordering",
	"wordiness":     "concision, eliminating redundancy, avoiding wordy phrases",
	"grammar":       "pronoun usage, parallel structure, modifiers",
	"style":         "tone consistency, formal language, word choice",
	// Math
	"algebra":      "solving equations, inequalities, systems of equations",
	"geometry":     "area, perimeter, volume, angles, coordinate geometry",
	"trigonometry": "sine, cosine, tangent, trigonometric identities",
	"statistics":   "mean, median, mode, probability, data interpretation",
	// Reading
	"main-idea":            "identifying central themes and main arguments",
	"inference":            "drawing conclusions from context and implied information",
	"vocabulary":           "understanding word meanings in context",
	"detail-comprehension": "finding and understanding specific information",
	"tone-purpose":         "identifying author tone and purpose",
	// Science
	"data-interpretation": "analyzing graphs, charts, and tables",
	"scientific-method":   "understanding experimental procedures",
	"hypothesis-testing":  "evaluating hypotheses and predictions",
	"experimental-design": "identifying controls and variables",
	"graph-analysis":      "interpreting scientific graphs and trends",
}

// describeSkills joins the request's skill tags as prompt descriptions.
func describeSkills(skills []string) string {
	parts := make([]string, 0, len(skills))
	for _, s := range skills {
		if desc, ok := skillDescriptions[s]; ok {
			parts = append(parts, desc)
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

// buildPrompt writes the section-specific user message. Math gets bare
// problems; english, reading, and science get a passage around the topic.
func buildPrompt(req GenerateRequest, topic string) string {
	skills := describeSkills(req.Skills)
	n := req.NumQuestions

	var b strings.Builder
	switch req.Section {
	case SectionMath:
		fmt.Fprintf(&b, "Generate %d ACT Math practice questions.\n\n", n)
		fmt.Fprintf(&b, "SKILLS: %s\nDIFFICULTY: %s\n\n", skills, req.Difficulty)
		fmt.Fprintf(&b, "Create %d math problems covering %s.\n", n, skills)
		b.WriteString("Include step-by-step solutions in explanations.")

	case SectionReading:
		fmt.Fprintf(&b, "Generate an ACT Reading comprehension passage with %d questions.\n\n", n)
		fmt.Fprintf(&b, "TOPIC: %s\nSKILLS: %s\nDIFFICULTY: %s\n\n", topic, skills, req.Difficulty)
		fmt.Fprintf(&b, "Create a 500-word passage about %s followed by %d comprehension questions.", topic, n)

	case SectionScience:
		fmt.Fprintf(&b, "Generate an ACT Science reasoning passage with %d questions.\n\n", n)
		fmt.Fprintf(&b, "TOPIC: Scientific experiment or data about %s\nSKILLS: %s\nDIFFICULTY: %s\n\n", topic, skills, req.Difficulty)
		fmt.Fprintf(&b, "Create a scientific data passage with graphs/tables about %s followed by %d data interpretation questions.", topic, n)

	default: // english
		fmt.Fprintf(&b, "Generate an ACT English practice passage with %d questions.\n\n", n)
		fmt.Fprintf(&b, "TOPIC: %s\nSKILLS: %s\nDIFFICULTY: %s\n\n", topic, skills, req.Difficulty)
		fmt.Fprintf(&b, "Create a 400-word passage about %s with %d numbered portions testing the specified skills.", topic, n)
	}

	fmt.Fprintf(&b, "\n\nIMPORTANT: Be concise and focus on quality.\n\n")
	fmt.Fprintf(&b, "Return a JSON object with passage and questions array. "+
		"Each question needs: id (1-based), text, exactly %d options, correct index (0-based), explanation, skill (one of: %s).",
		OptionsPerQuestion, strings.Join(req.Skills, ", "))

	return b.String()
}
