package db

import (
	"context"
	"fmt"
	"log/slog"
)

const schema = `
CREATE TABLE IF NOT EXISTS conversations (
    id UUID PRIMARY KEY,
    agent TEXT NOT NULL,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    cached BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_conversations_created_at
    ON conversations (created_at DESC);

CREATE INDEX IF NOT EXISTS idx_conversations_agent
    ON conversations (agent);
`

// Migrate applies the schema. Statements are idempotent so this is safe to
// run on every startup.
func Migrate(ctx context.Context, exec Executor) error {
	slog.Info("Applying database schema...")
	if _, err := exec.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	slog.Info("Database schema is up to date.")
	return nil
}
