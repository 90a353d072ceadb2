// Package editor holds the in-progress copy of a study set's questions while a
// user creates or edits it.
//
// Every List operation returns a new List and leaves its receiver untouched,
// so a view can swap whole values. Positions shift after a removal; each
// question and answer also carries a key that stays put, which forms use to
// address the item they were rendered from.
package editor

import (
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/andrewpaige1/studyset-web/models"
)

// Answer is one editable answer.
type Answer struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Entry is one editable question.
type Entry struct {
	Key      string   `json:"key"`
	Question string   `json:"question"`
	Answers  []Answer `json:"answers"`
}

// List is the ordered sequence of questions being edited.
type List []Entry

func newKey() string {
	return gonanoid.Must(10)
}

// New seeds a list from questions, assigning fresh keys.
func New(questions []models.Question) List {
	l := make(List, 0, len(questions))
	for _, q := range questions {
		e := Entry{Key: newKey(), Question: q.Question, Answers: make([]Answer, 0, len(q.Answers))}
		for _, a := range q.Answers {
			e.Answers = append(e.Answers, Answer{Key: newKey(), Text: a})
		}
		l = append(l, e)
	}
	return l
}

// Questions converts the list back to the wire model.
func (l List) Questions() []models.Question {
	out := make([]models.Question, 0, len(l))
	for _, e := range l {
		q := models.Question{Question: e.Question, Answers: make([]string, 0, len(e.Answers))}
		for _, a := range e.Answers {
			q.Answers = append(q.Answers, a.Text)
		}
		out = append(out, q)
	}
	return out
}

// Len returns the number of questions.
func (l List) Len() int {
	return len(l)
}

func (l List) clone() List {
	out := make(List, len(l))
	for i, e := range l {
		answers := make([]Answer, len(e.Answers))
		copy(answers, e.Answers)
		e.Answers = answers
		out[i] = e
	}
	return out
}

func (l List) has(i int) bool {
	return i >= 0 && i < len(l)
}

// AddQuestion appends an empty question.
func (l List) AddQuestion() List {
	return append(l.clone(), Entry{Key: newKey(), Answers: []Answer{}})
}

// RemoveQuestion drops the question at i.
func (l List) RemoveQuestion(i int) List {
	out := l.clone()
	if !l.has(i) {
		return out
	}
	return append(out[:i], out[i+1:]...)
}

// EditQuestion sets the text of the question at i.
func (l List) EditQuestion(i int, text string) List {
	out := l.clone()
	if l.has(i) {
		out[i].Question = text
	}
	return out
}

// AddAnswer appends an empty answer to the question at i.
func (l List) AddAnswer(i int) List {
	out := l.clone()
	if l.has(i) {
		out[i].Answers = append(out[i].Answers, Answer{Key: newKey()})
	}
	return out
}

// RemoveAnswer drops answer j of question i.
func (l List) RemoveAnswer(i, j int) List {
	out := l.clone()
	if !l.has(i) || j < 0 || j >= len(out[i].Answers) {
		return out
	}
	out[i].Answers = append(out[i].Answers[:j], out[i].Answers[j+1:]...)
	return out
}

// EditAnswer sets the text of answer j of question i.
func (l List) EditAnswer(i, j int, text string) List {
	out := l.clone()
	if !l.has(i) || j < 0 || j >= len(out[i].Answers) {
		return out
	}
	out[i].Answers[j].Text = text
	return out
}

// IndexOf returns the position of the question with key, or -1.
func (l List) IndexOf(key string) int {
	for i, e := range l {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// AnswerIndexOf returns the position of the answer with key inside question
// i, or -1.
func (l List) AnswerIndexOf(i int, key string) int {
	if !l.has(i) {
		return -1
	}
	for j, a := range l[i].Answers {
		if a.Key == key {
			return j
		}
	}
	return -1
}
