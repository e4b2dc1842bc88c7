package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	runIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	runIDSize     = 10
)

// NewRunID identifica uma execução do seed nos logs e no relatório
func NewRunID() (string, error) {
	return gonanoid.Generate(runIDAlphabet, runIDSize)
}
