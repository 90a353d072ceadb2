package models

// Question is a prompt with its accepted answers. It has no identity beyond
// its position in the owning StudySet.
type Question struct {
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}

// StudySet is a named collection of questions owned by the backend.
type StudySet struct {
	ID        int        `json:"id"`
	Subject   string     `json:"subject"`
	Questions []Question `json:"questions"`
}

// StudySetInput is the create/update payload. The backend assigns the id.
type StudySetInput struct {
	Subject   string     `json:"subject"`
	Questions []Question `json:"questions"`
}

// StudySets is the displayed list of study sets.
type StudySets []StudySet

// Append returns the list with set added at the end.
func (s StudySets) Append(set StudySet) StudySets {
	out := make(StudySets, 0, len(s)+1)
	out = append(out, s...)
	return append(out, set)
}

// Replace swaps the set with the same id for the canonical copy. A set that
// is not in the list yet is appended.
func (s StudySets) Replace(set StudySet) StudySets {
	out := make(StudySets, len(s))
	copy(out, s)
	for i := range out {
		if out[i].ID == set.ID {
			out[i] = set
			return out
		}
	}
	return append(out, set)
}

// Without removes exactly the set with the given id.
func (s StudySets) Without(id int) StudySets {
	out := make(StudySets, 0, len(s))
	for _, set := range s {
		if set.ID != id {
			out = append(out, set)
		}
	}
	return out
}

// Find returns the set with the given id.
func (s StudySets) Find(id int) (StudySet, bool) {
	for _, set := range s {
		if set.ID == id {
			return set, true
		}
	}
	return StudySet{}, false
}

// Filter keeps the sets whose id is in ids, preserving list order.
func (s StudySets) Filter(ids []int) StudySets {
	keep := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	out := make(StudySets, 0, len(ids))
	for _, set := range s {
		if _, ok := keep[set.ID]; ok {
			out = append(out, set)
		}
	}
	return out
}
