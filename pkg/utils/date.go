package utils

import (
	"fmt"
	"strings"
	"time"
)

// Layouts aceitos para datas vindas do banco ou dos arquivos de carga
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseDate converte "YYYY-MM-DD" (ou um timestamp completo) para time.Time em UTC
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, dateStr); err == nil {
			utc := parsed.UTC()
			return &utc, nil
		}
	}

	return nil, fmt.Errorf("data em formato inválido: %q", dateStr)
}

// FormatDate formata a data no padrão armazenado para negócios (YYYY-MM-DD)
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// FormatTimestamp formata o horário no padrão armazenado para atividades
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
