package domain

import "time"

type Activity struct {
	ID        string    `json:"activity_id"`
	DealID    string    `json:"deal_id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}
