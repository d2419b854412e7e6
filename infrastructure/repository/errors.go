package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

func wrapDBError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}

// nonNilStrings evita gravar NULL em colunas TEXT[] NOT NULL
func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
