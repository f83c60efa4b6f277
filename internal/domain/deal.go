// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

const (
	StageProspecting = "Prospecting"
	StageNegotiation = "Negotiation"
	StageClosedWon   = "Closed Won"
	StageClosedLost  = "Closed Lost"
)

// ClosedStages são os estágios terminais de um negócio
var ClosedStages = []string{StageClosedWon, StageClosedLost}

// IsClosedStage informa se o estágio é terminal
func IsClosedStage(stage string) bool {
	return stage == StageClosedWon || stage == StageClosedLost
}

type Deal struct {
	ID        string     `json:"deal_id"`
	AccountID string     `json:"account_id"`
	RepID     string     `json:"rep_id"`
	Stage     string     `json:"stage"`
	Amount    float64    `json:"amount"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at"`
}

func (d *Deal) IsWon() bool {
	return d.Stage == StageClosedWon
}

func (d *Deal) IsLost() bool {
	return d.Stage == StageClosedLost
}

// OpenDealActivity é um negócio aberto acompanhado do nome da conta e da última atividade registrada
type OpenDealActivity struct {
	Deal
	AccountName    string
	LastActivityAt *time.Time
}

// LastTouch retorna a última atividade ou, na ausência dela, a data de criação
func (d *OpenDealActivity) LastTouch() time.Time {
	if d.LastActivityAt != nil {
		return *d.LastActivityAt
	}
	return d.CreatedAt
}
