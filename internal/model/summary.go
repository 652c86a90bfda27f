package model

import "time"

// Summary is the record of a completed kiosk run.
type Summary struct {
	RunID        string     `json:"run_id"`
	Station      string     `json:"station,omitempty"`
	BoardingPass string     `json:"boarding_pass"`
	BagTag       string     `json:"bag_tag"`
	Dimensions   Dimensions `json:"dimensions"`
	Decision     Decision   `json:"decision"`
	CompletedAt  time.Time  `json:"completed_at"`
}
