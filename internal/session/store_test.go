package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/livinggrainco/site/internal/commission"
	"github.com/livinggrainco/site/internal/database"
	"github.com/livinggrainco/site/internal/migrations"
	"github.com/livinggrainco/site/internal/wizard"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

type sweepingStore interface {
	Store
	Sweeper
}

func newSQLiteStore(t *testing.T, ttl time.Duration) *SQLiteStore {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	// Every pooled connection would get its own in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := migrations.Run(context.Background(), db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return NewSQLiteStore(db, ttl)
}

func sampleSession(t *testing.T) *wizard.Session {
	t.Helper()
	s := wizard.New(NewID(), wizard.Options{})
	if err := s.NewCommission(); err != nil {
		t.Fatalf("NewCommission: %v", err)
	}
	if err := s.Submit(commission.Patch{commission.FieldProjectType: "watch-box"}, wizard.ActionSelect); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := s.Submit(commission.Patch{commission.FieldWatchCapacity: "6"}, wizard.ActionSelect); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return s
}

func TestStores(t *testing.T) {
	const ttl = 30 * time.Minute

	backends := []struct {
		name string
		make func(t *testing.T, c *clock) sweepingStore
	}{
		{
			name: "memory",
			make: func(t *testing.T, c *clock) sweepingStore {
				m := NewMemoryStore(ttl)
				m.now = c.now
				return m
			},
		},
		{
			name: "sqlite",
			make: func(t *testing.T, c *clock) sweepingStore {
				s := newSQLiteStore(t, ttl)
				s.now = c.now
				return s
			},
		},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			c := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
			store := b.make(t, c)

			if _, err := store.Get(ctx, NewID()); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
			}

			sess := sampleSession(t)
			if err := store.Save(ctx, sess); err != nil {
				t.Fatalf("Save: %v", err)
			}

			got, err := store.Get(ctx, sess.ID)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Index != sess.Index || got.Variant != sess.Variant {
				t.Errorf("index/variant = %d/%q, want %d/%q", got.Index, got.Variant, sess.Index, sess.Variant)
			}
			if diff := cmp.Diff(sess.Answers.Map(), got.Answers.Map()); diff != "" {
				t.Errorf("answers mismatch (-want +got):\n%s", diff)
			}
			if !got.UpdatedAt.Equal(c.t) {
				t.Errorf("updatedAt = %v, want %v", got.UpdatedAt, c.t)
			}

			// Mutating the loaded copy does not touch the stored one.
			got.GoBack()
			again, err := store.Get(ctx, sess.ID)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if again.Index != sess.Index {
				t.Errorf("stored index = %d, want %d", again.Index, sess.Index)
			}

			// Saving refreshes the idle TTL.
			c.advance(ttl - time.Minute)
			if err := store.Save(ctx, again); err != nil {
				t.Fatalf("Save: %v", err)
			}
			c.advance(ttl - time.Minute)
			if _, err := store.Get(ctx, sess.ID); err != nil {
				t.Fatalf("Get after refresh: %v", err)
			}

			c.advance(time.Minute)
			if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get(expired) error = %v, want ErrNotFound", err)
			}
			n, err := store.Sweep(ctx)
			if err != nil {
				t.Fatalf("Sweep: %v", err)
			}
			if n != 1 {
				t.Errorf("swept = %d, want 1", n)
			}

			fresh := sampleSession(t)
			if err := store.Save(ctx, fresh); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := store.Delete(ctx, fresh.ID); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := store.Get(ctx, fresh.ID); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get(deleted) error = %v, want ErrNotFound", err)
			}
			if err := store.Check(ctx); err != nil {
				t.Errorf("Check: %v", err)
			}
		})
	}
}

func TestMemoryStoreClonesOnSave(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(time.Hour)
	sess := sampleSession(t)
	if err := m.Save(ctx, sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	sess.Answers.Unset(commission.FieldWatchCapacity)
	got, err := m.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Answers.Has(commission.FieldWatchCapacity) {
		t.Error("stored session changed through the caller's pointer")
	}
	if m.Len() != 1 {
		t.Errorf("len = %d, want 1", m.Len())
	}
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: NewID(), want: true},
		{id: "", want: false},
		{id: "not-a-session", want: false},
		{id: "{" + NewID() + "}", want: false},
	}
	for _, tt := range tests {
		if got := ValidID(tt.id); got != tt.want {
			t.Errorf("ValidID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
