// Package importer turns pasted tab-delimited text into study set questions.
package importer

import (
	"strings"

	"github.com/andrewpaige1/studyset-web/models"
)

// Parse splits text into one question per non-blank line. Each line holds a
// question and an answer separated by a tab; reverse swaps the two. Lines
// without a tab get an empty answer and fields past the second are ignored.
func Parse(text string, reverse bool) []models.Question {
	questions := []models.Question{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		question, answer, _ := strings.Cut(line, "\t")
		answer, _, _ = strings.Cut(answer, "\t")
		if reverse {
			question, answer = answer, question
		}

		questions = append(questions, models.Question{
			Question: question,
			Answers:  []string{answer},
		})
	}
	return questions
}
