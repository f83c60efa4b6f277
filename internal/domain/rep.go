package domain

type Rep struct {
	ID   string `json:"rep_id"`
	Name string `json:"name"`
}
