package domain

// Target é a meta de receita de um mês (formato YYYY-MM)
type Target struct {
	Month  string  `json:"month"`
	Target float64 `json:"target"`
}

// SumTargets soma as metas indexadas por mês; meses ausentes contribuem com 0
func SumTargets(targets []*Target, months []string) float64 {
	byMonth := make(map[string]float64, len(targets))
	for _, t := range targets {
		byMonth[t.Month] = t.Target
	}

	var total float64
	for _, m := range months {
		total += byMonth[m]
	}
	return total
}
