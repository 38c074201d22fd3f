package conversation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/adisatrio/mindskit/internal/platform/db"
	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("conversation repository: conversation not found")
	ErrQueryFailed = errors.New("conversation repository: query failed")
)

type repository struct {
	db db.Executor
}

var _ Repository = (*repository)(nil)

func NewRepository(dbExec db.Executor) *repository {
	return &repository{db: dbExec}
}

const queryConversationCreate = `
INSERT INTO conversations (id, agent, question, answer, cached)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, agent, question, answer, cached, created_at
`

func (r *repository) Create(ctx context.Context, params CreateParams) (Conversation, error) {
	id := uuid.NewString()
	row := r.db.QueryRowContext(ctx, queryConversationCreate,
		id, params.Agent, params.Question, params.Answer, params.Cached)

	var c Conversation
	if err := row.Scan(&c.ID, &c.Agent, &c.Question, &c.Answer, &c.Cached, &c.CreatedAt); err != nil {
		return c, fmt.Errorf("%w: create conversation for agent %s: %v", ErrQueryFailed, params.Agent, err)
	}
	return c, nil
}

const queryConversationList = `
SELECT id, agent, question, answer, cached, created_at FROM conversations
ORDER BY created_at DESC
`

func (r *repository) List(ctx context.Context) ([]Conversation, error) {
	rows, err := r.db.QueryContext(ctx, queryConversationList)
	if err != nil {
		return nil, fmt.Errorf("%w: list conversations: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var convos []Conversation
	for rows.Next() {
		var c Conversation
		if err := rows.Scan(&c.ID, &c.Agent, &c.Question, &c.Answer, &c.Cached, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("conversation repository: scan row: %w", err)
		}
		convos = append(convos, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("conversation repository: iterate over rows: %w", err)
	}

	return convos, nil
}

const queryConversationFind = `
SELECT id, agent, question, answer, cached, created_at FROM conversations
WHERE id = $1
LIMIT 1
`

func (r *repository) Find(ctx context.Context, id string) (*Conversation, error) {
	row := r.db.QueryRowContext(ctx, queryConversationFind, id)

	var c Conversation
	if err := row.Scan(&c.ID, &c.Agent, &c.Question, &c.Answer, &c.Cached, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find conversation with id %s: %v", ErrQueryFailed, id, err)
	}
	return &c, nil
}
