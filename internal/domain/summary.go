package domain

// Summary é o resumo do trimestre corrente
type Summary struct {
	Quarter               *string  `json:"quarter"`
	CurrentQuarterRevenue float64  `json:"currentQuarterRevenue"`
	Target                float64  `json:"target"`
	GapPercent            float64  `json:"gapPercent"`
	QoQChangePercent      *float64 `json:"qoqChangePercent"`
}

func EmptySummary() *Summary {
	return &Summary{}
}
