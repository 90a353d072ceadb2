package models

// Classroom groups students and study sets under a teacher.
type Classroom struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Students  []int  `json:"students"`
	Teacher   int    `json:"teacher"`
	StudySets []int  `json:"study_sets"`
}
