package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// Códigos SQLSTATE usados pelos repositórios
const (
	codeInvalidTextRepresentation pq.ErrorCode = "22P02"
	codeForeignKeyViolation       pq.ErrorCode = "23503"
	codeUniqueViolation           pq.ErrorCode = "23505"
)

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code
	}
	return false
}

// IsInvalidText indica um valor mal formado para o tipo da coluna, por exemplo um UUID inválido
func IsInvalidText(err error) bool {
	return hasCode(err, codeInvalidTextRepresentation)
}

func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}
