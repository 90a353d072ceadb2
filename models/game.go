package models

// GameSession is what a player picked on a study set card before being sent
// to the games page.
type GameSession struct {
	Game     string   `json:"game"`
	StudySet StudySet `json:"study_set"`
	Avatar   int      `json:"avatar"`
}
