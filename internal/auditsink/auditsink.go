// Package auditsink persists the audit fields a completed scan must leave
// behind: action, risk score, serialized detections, prompt hash, and
// latency. The pipeline's caller owns the AuditSink contract; this package
// supplies the concrete Postgres implementation via pgx.
package auditsink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sentineldlp/gateway/internal/pipeline"
)

// AuditSink persists one scan's audit fields. Implementations must not
// mutate result or block the caller longer than the surrounding request's
// own timeout budget allows.
type AuditSink interface {
	Record(ctx context.Context, requestID, userID string, result pipeline.ScanResult) error
}

// PostgresSink writes audit records to a "scan_audit_log" table via a pgx
// connection pool.
type PostgresSink struct {
	pool *pgxpool.Pool
}

// NewPostgresSink wraps an already-connected pool.
func NewPostgresSink(pool *pgxpool.Pool) *PostgresSink {
	return &PostgresSink{pool: pool}
}

const insertAuditRecord = `
INSERT INTO scan_audit_log
	(request_id, user_id, action, risk_score, detections, prompt_hash, latency_ms)
VALUES
	($1, $2, $3, $4, $5, $6, $7)
`

// Record inserts one audit row. Detections are serialized to JSON for the
// detections column; a marshal failure (which should never happen for this
// package's own types) is reported rather than silently dropping the
// detection detail.
func (s *PostgresSink) Record(ctx context.Context, requestID, userID string, result pipeline.ScanResult) error {
	detections, err := json.Marshal(result.Detections)
	if err != nil {
		return fmt.Errorf("auditsink: marshaling detections: %w", err)
	}

	_, err = s.pool.Exec(ctx, insertAuditRecord,
		requestID, userID, result.Action.String(), result.RiskScore,
		detections, result.PromptHash, result.LatencyMs,
	)
	if err != nil {
		return fmt.Errorf("auditsink: inserting audit record: %w", err)
	}
	return nil
}
