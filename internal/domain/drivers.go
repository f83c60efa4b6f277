package domain

type MonthlyDriver struct {
	Month          string   `json:"month"`
	PipelineValue  float64  `json:"pipelineValue"`
	WinRate        *float64 `json:"winRate"`
	AvgDealSize    float64  `json:"avgDealSize"`
	SalesCycleDays int      `json:"salesCycleDays"`
}

// DriversReport traz os 12 meses do ano de referência em ordem cronológica
type DriversReport struct {
	Year    *int             `json:"year"`
	Monthly []*MonthlyDriver `json:"monthly"`
}

func EmptyDriversReport() *DriversReport {
	return &DriversReport{Monthly: []*MonthlyDriver{}}
}
