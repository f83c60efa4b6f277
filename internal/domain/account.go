package domain

import "time"

type Account struct {
	ID       string  `json:"account_id"`
	Name     string  `json:"name"`
	Industry *string `json:"industry,omitempty"`
	Segment  *string `json:"segment,omitempty"`
}

// AccountActivityStats agrega as atividades de todos os negócios de uma conta
type AccountActivityStats struct {
	AccountID      string
	AccountName    string
	ActivityCount  int
	LastActivityAt *time.Time
}
