//go:build integration

package conversation_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/adisatrio/mindskit/internal/config"
	"github.com/adisatrio/mindskit/internal/conversation"
	"github.com/adisatrio/mindskit/internal/platform/db"
	"github.com/ferdiebergado/gopherkit/env"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var conn *sql.DB

func TestMain(m *testing.M) {
	if err := env.Load("../../.env.testing"); err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load("../../config.json")
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	conn, err = db.NewPostgresDB(ctx, cfg.DB)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Migrate(ctx, conn); err != nil {
		log.Fatal(err)
	}

	os.Exit(m.Run())
}

func resetDB(t *testing.T) {
	t.Helper()
	if _, err := conn.Exec("TRUNCATE conversations"); err != nil {
		t.Fatalf("reset db: %v", err)
	}
}

func TestRepository_CreateAndFind(t *testing.T) {
	resetDB(t)

	ctx := context.Background()
	repo := conversation.NewRepository(conn)

	created, err := repo.Create(ctx, conversation.CreateParams{
		Agent:    "ease_agent",
		Question: "what data can I query?",
		Answer:   "You can query the sales table.",
	})
	if err != nil {
		t.Fatalf("repo.Create() = %v, want: nil", err)
	}

	if created.ID == "" {
		t.Error("created.ID is empty, want a generated UUID")
	}

	found, err := repo.Find(ctx, created.ID)
	if err != nil {
		t.Fatalf("repo.Find(%q) = %v, want: nil", created.ID, err)
	}

	if found.Question != created.Question || found.Answer != created.Answer {
		t.Errorf("repo.Find() = %+v, want: %+v", found, created)
	}
}

func TestRepository_FindMissing(t *testing.T) {
	resetDB(t)

	repo := conversation.NewRepository(conn)

	_, err := repo.Find(context.Background(), "3f1d2c77-46a8-4f6e-9a2e-0b5d7f8a9c01")
	if err != conversation.ErrNotFound {
		t.Errorf("repo.Find() error = %v, want: %v", err, conversation.ErrNotFound)
	}
}

func TestRepository_ListNewestFirst(t *testing.T) {
	resetDB(t)

	ctx := context.Background()
	repo := conversation.NewRepository(conn)

	for _, q := range []string{"first", "second", "third"} {
		if _, err := repo.Create(ctx, conversation.CreateParams{
			Agent:    "ease_agent",
			Question: q,
			Answer:   "answer to " + q,
		}); err != nil {
			t.Fatalf("repo.Create(%q) = %v, want: nil", q, err)
		}
	}

	convos, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("repo.List() = %v, want: nil", err)
	}

	if got, want := len(convos), 3; got != want {
		t.Fatalf("len(convos) = %d, want: %d", got, want)
	}

	if convos[0].Question != "third" {
		t.Errorf("convos[0].Question = %q, want: %q", convos[0].Question, "third")
	}
}
