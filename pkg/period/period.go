// Package period resolve janelas de calendário (trimestres e meses) usadas pelas métricas.
//
// Todas as datas são tratadas como datas civis em UTC: o horário é descartado e
// o fim de uma janela é sempre o último dia real do período (inclusivo).
package period

import (
	"fmt"
	"time"
)

const monthKeyLayout = "2006-01"

// Window é um intervalo de datas inclusivo nas duas pontas
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains informa se a data (truncada para o dia) está dentro da janela
func (w Window) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Exclusive retorna o dia seguinte ao fim, para consultas no formato [Start, Exclusive)
func (w Window) Exclusive() time.Time {
	return w.End.AddDate(0, 0, 1)
}

// Quarter representa um trimestre civil
type Quarter struct {
	Window
	Label  string `json:"label"`
	Number int    `json:"number"`
	Year   int    `json:"year"`
}

// Day trunca a data para meia-noite UTC
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// QuarterOf retorna o trimestre civil que contém a data
func QuarterOf(t time.Time) Quarter {
	d := Day(t)
	number := (int(d.Month())-1)/3 + 1
	start := time.Date(d.Year(), time.Month((number-1)*3+1), 1, 0, 0, 0, 0, time.UTC)

	return Quarter{
		Window: Window{
			Start: start,
			End:   EndOfMonth(start.AddDate(0, 2, 0)),
		},
		Label:  fmt.Sprintf("Q%d %d", number, d.Year()),
		Number: number,
		Year:   d.Year(),
	}
}

// PreviousQuarter retorna o trimestre que contém a data de início menos 3 meses
func PreviousQuarter(q Quarter) Quarter {
	return QuarterOf(q.Start.AddDate(0, -3, 0))
}

// MonthKeys retorna as três chaves "YYYY-MM" do trimestre
func (q Quarter) MonthKeys() []string {
	keys := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		keys = append(keys, MonthKey(q.Start.AddDate(0, i, 0)))
	}
	return keys
}

// EndOfMonth retorna o último dia do mês da data
func EndOfMonth(t time.Time) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1)
}

// MonthKey formata a data como "YYYY-MM"
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// ParseMonthKey converte "YYYY-MM" para o primeiro dia do mês
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("mês inválido %q: %w", key, err)
	}
	return t, nil
}

// MonthWindow retorna a janela do primeiro ao último dia real do mês
func MonthWindow(key string) (Window, error) {
	start, err := ParseMonthKey(key)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: start, End: EndOfMonth(start)}, nil
}

// YearMonthKeys gera as 12 chaves "YYYY-01".."YYYY-12" do ano
func YearMonthKeys(year int) []string {
	keys := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		keys = append(keys, MonthKey(time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)))
	}
	return keys
}

// YearWindow cobre de 1º de janeiro a 31 de dezembro
func YearWindow(year int) Window {
	return Window{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// DaysBetween conta os dias civis inteiros de from até to (negativo se to for anterior)
func DaysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)).Hours() / 24)
}
