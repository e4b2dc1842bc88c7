package domain

import "time"

// SeedDataset é o conjunto fixo de dados de demonstração
type SeedDataset struct {
	Users     []User
	Customers []Customer
	Invoices  []Invoice
	Revenue   []Revenue
}

type SeedStepReport struct {
	Total    int `json:"total"`
	Inserted int `json:"inserted"`
}

// Skipped retorna as linhas que já existiam no banco
func (r SeedStepReport) Skipped() int {
	return r.Total - r.Inserted
}

type SeedReport struct {
	RunID         string         `json:"run_id"`
	DroppedTables []string       `json:"dropped_tables"`
	Users         SeedStepReport `json:"users"`
	Customers     SeedStepReport `json:"customers"`
	Invoices      SeedStepReport `json:"invoices"`
	Revenue       SeedStepReport `json:"revenue"`
	StartedAt     time.Time      `json:"started_at"`
	FinishedAt    time.Time      `json:"finished_at"`
}
