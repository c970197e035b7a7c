package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestao-api/internal/domain/repository"
)

// queryGroupCounts ejecuta un SELECT label, count y lo convierte en GroupCount.
func queryGroupCounts(ctx context.Context, q Querier, op, query string, args ...any) ([]repository.GroupCount, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]repository.GroupCount, 0)
	for rows.Next() {
		var g repository.GroupCount
		if err := rows.Scan(&g.Label, &g.Count); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// queryGroupAmounts ejecuta un SELECT label, amount y lo convierte en GroupAmount.
func queryGroupAmounts(ctx context.Context, q Querier, op, query string, args ...any) ([]repository.GroupAmount, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]repository.GroupAmount, 0)
	for rows.Next() {
		var g repository.GroupAmount
		if err := rows.Scan(&g.Label, &g.Amount); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// queryCount ejecuta un SELECT COUNT(*).
func queryCount(ctx context.Context, q Querier, op, query string, args ...any) (int, error) {
	var n int
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
