package domain

type StaleDeal struct {
	DealID            string  `json:"deal_id"`
	AccountName       string  `json:"accountName"`
	RepID             string  `json:"rep_id"`
	Stage             string  `json:"stage"`
	Amount            float64 `json:"amount"`
	DaysSinceActivity int     `json:"daysSinceActivity"`
}

type StaleDealsRisk struct {
	Count         int          `json:"count"`
	ThresholdDays int          `json:"thresholdDays"`
	UrgentCount   int          `json:"urgentCount"`
	Items         []*StaleDeal `json:"items"`
}

type UnderperformingRep struct {
	RepID           string  `json:"rep_id"`
	RepName         string  `json:"repName"`
	Revenue         float64 `json:"revenue"`
	Target          float64 `json:"target"`
	PercentOfTarget float64 `json:"percentOfTarget"`
}

type UnderperformingRepsRisk struct {
	Count int                   `json:"count"`
	Items []*UnderperformingRep `json:"items"`
}

type LowActivityAccount struct {
	AccountID             string `json:"account_id"`
	AccountName           string `json:"accountName"`
	ActivityCount         int    `json:"activityCount"`
	DaysSinceLastActivity *int   `json:"daysSinceLastActivity"`
}

type LowActivityAccountsRisk struct {
	Count         int                   `json:"count"`
	ThresholdDays int                   `json:"thresholdDays"`
	Items         []*LowActivityAccount `json:"items"`
}

// RiskFactors reúne as três análises de risco; Count é sempre o total sem corte
type RiskFactors struct {
	StaleDeals          *StaleDealsRisk          `json:"staleDeals"`
	UnderperformingReps *UnderperformingRepsRisk `json:"underperformingReps"`
	LowActivityAccounts *LowActivityAccountsRisk `json:"lowActivityAccounts"`
}

// EmptyRiskFactors é o resultado quando não há negócios na base
func EmptyRiskFactors(staleThreshold, lowActivityThreshold int) *RiskFactors {
	return &RiskFactors{
		StaleDeals:          &StaleDealsRisk{ThresholdDays: staleThreshold, Items: []*StaleDeal{}},
		UnderperformingReps: &UnderperformingRepsRisk{Items: []*UnderperformingRep{}},
		LowActivityAccounts: &LowActivityAccountsRisk{ThresholdDays: lowActivityThreshold, Items: []*LowActivityAccount{}},
	}
}
