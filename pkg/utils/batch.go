package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	batchIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	batchIDLength   = 8
)

// NewBatchID gera o identificador curto que correlaciona os logs de uma execução da carga
func NewBatchID() (string, error) {
	return gonanoid.Generate(batchIDAlphabet, batchIDLength)
}
