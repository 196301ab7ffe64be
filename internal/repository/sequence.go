package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so code
// allocation can run inside the caller's transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NextCode allocates the next human-readable sequential code for a
// table: prefix plus the highest existing numeric suffix incremented by
// one, zero-padded to three digits (IMV007 -> IMV008; empty table ->
// IMV001). Callers must run it inside a transaction; a transaction-
// scoped advisory lock keyed on table+column serializes concurrent
// allocations so two requests cannot read the same maximum.
//
// A failed lookup falls back to the first code instead of propagating
// the error: creation is never blocked on the sequence read.
func NextCode(ctx context.Context, q querier, table string, column string, prefix string) string {
	first := fmt.Sprintf("%s%03d", prefix, 1)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, table+"."+column); err != nil {
		slog.Warn("code sequence lock failed; falling back to first code", "table", table, "error", err)
		return first
	}

	// table and column are compile-time constants at every call site.
	rows, err := q.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE %s LIKE $1`, column, table, column),
		prefix+"%")
	if err != nil {
		slog.Warn("code sequence lookup failed; falling back to first code", "table", table, "error", err)
		return first
	}
	defer rows.Close()

	codes := make([]string, 0)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			slog.Warn("code sequence scan failed; falling back to first code", "table", table, "error", err)
			return first
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		slog.Warn("code sequence read failed; falling back to first code", "table", table, "error", err)
		return first
	}

	return nextSequential(prefix, codes)
}

// nextSequential picks max(numeric suffix)+1, not count+1, so gaps left
// by deleted rows are never refilled. Codes with a malformed or foreign
// suffix are ignored.
func nextSequential(prefix string, codes []string) string {
	max := 0
	for _, code := range codes {
		suffix := strings.TrimPrefix(code, prefix)
		if suffix == code {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s%03d", prefix, max+1)
}
