package repository

import "time"

// Round is one submitted estimation round.
type Round struct {
	ID         string    `json:"id" yaml:"id"`
	Game       string    `json:"game" yaml:"game"`
	Target     string    `json:"target" yaml:"target"`
	Guess      string    `json:"guess" yaml:"guess"`
	TargetVal  float64   `json:"target_value" yaml:"target_value"`
	GuessVal   float64   `json:"guess_value" yaml:"guess_value"`
	Difference float64   `json:"difference" yaml:"difference"`
	Grade      string    `json:"grade" yaml:"grade"`
	Unit       string    `json:"unit" yaml:"unit"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}
