package models

import "time"

// UserAnswer records the user's answer to one question of a session.
// TimeSpent is in seconds.
type UserAnswer struct {
	QuestionIndex   int   `json:"questionIndex"`
	SelectedOptions []int `json:"selectedOptions"`
	IsCorrect       bool  `json:"isCorrect"`
	TimeSpent       int   `json:"timeSpent"`
}

// QuizSession is one completed (or in-progress) run through a quiz. Sessions
// carry a snapshot of the questions so the history stays readable after the
// quiz itself is edited or deleted.
type QuizSession struct {
	ID             string         `json:"id"`
	QuizID         string         `json:"quizId"`
	QuizName       string         `json:"quizName"`
	Questions      []QuizQuestion `json:"questions"`
	UserAnswers    []UserAnswer   `json:"userAnswers"`
	StartTime      time.Time      `json:"startTime"`
	EndTime        *time.Time     `json:"endTime,omitempty"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
}

// Key implements [Keyed].
func (s QuizSession) Key() string { return s.ID }
