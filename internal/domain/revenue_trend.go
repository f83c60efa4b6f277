package domain

type RevenueTrendMonth struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Target  float64 `json:"target"`
	Gap     float64 `json:"gap"`
}

type RevenueTrend struct {
	Months []*RevenueTrendMonth `json:"months"`
}
