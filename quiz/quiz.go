// Package quiz holds the fixed quiz and scores submissions against it.
package quiz

type Question struct {
	Text    string
	Options []string
	Answer  string
}

var questions = []Question{
	{
		Text:    "What is Flask?",
		Options: []string{"Python Framework", "Database", "Browser", "Game Engine"},
		Answer:  "Python Framework",
	},
	{
		Text:    "Which language is used for Flask?",
		Options: []string{"Java", "Python", "C++", "PHP"},
		Answer:  "Python",
	},
}

// Questions returns the fixed question set.
func Questions() []Question {
	return questions
}

// Score counts exact matches between submitted options and correct answers,
// keyed by question index. A missing answer counts as incorrect.
func Score(answers map[int]string) int {
	score := 0
	for i, q := range questions {
		if answers[i] == q.Answer {
			score++
		}
	}
	return score
}
