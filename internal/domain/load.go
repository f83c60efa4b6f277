package domain

import "time"

// EntityLoadResult resume a carga de uma entidade
type EntityLoadResult struct {
	Read     int   `json:"read"`
	Invalid  int   `json:"invalid"`
	Inserted int64 `json:"inserted"`
}

// LoadResult resume uma execução completa da carga de dados
type LoadResult struct {
	BatchID    string                      `json:"batch_id"`
	StartedAt  time.Time                   `json:"started_at"`
	FinishedAt time.Time                   `json:"finished_at"`
	Entities   map[string]EntityLoadResult `json:"entities"`
}

// ReloadStatus expõe o estado do agendador de recarga
type ReloadStatus struct {
	Enabled         bool        `json:"enabled"`
	CronSchedule    string      `json:"cron_schedule"`
	Running         bool        `json:"running"`
	LastStartedAt   *time.Time  `json:"last_started_at"`
	LastCompletedAt *time.Time  `json:"last_completed_at"`
	LastError       string      `json:"last_error,omitempty"`
	LastResult      *LoadResult `json:"last_result,omitempty"`
}
