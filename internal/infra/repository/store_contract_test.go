package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
)

// runStoreContract exercises the behaviour every ReminderStore must share.
// The store must be empty on entry.
func runStoreContract(t *testing.T, store domain.ReminderStore) {
	t.Helper()
	ctx := context.Background()

	remindAt := time.Date(2024, 1, 1, 12, 10, 0, 0, time.Local)

	t.Run("insert assigns increasing ids", func(t *testing.T) {
		first, err := store.Insert(ctx, "call mom", remindAt)
		if err != nil {
			t.Fatalf("Insert() unexpected error: %v", err)
		}
		second, err := store.Insert(ctx, "water plants", remindAt.Add(time.Hour))
		if err != nil {
			t.Fatalf("Insert() unexpected error: %v", err)
		}
		if second <= first {
			t.Errorf("second id %d not greater than first id %d", second, first)
		}

		got, err := store.Get(ctx, first)
		if err != nil {
			t.Fatalf("Get() unexpected error: %v", err)
		}
		if got.Message != "call mom" {
			t.Errorf("Message = %q, want %q", got.Message, "call mom")
		}
		if !got.RemindAt.Equal(remindAt) {
			t.Errorf("RemindAt = %v, want %v", got.RemindAt, remindAt)
		}
		if got.Triggered {
			t.Error("Triggered = true, want false")
		}
	})

	t.Run("list pending excludes triggered", func(t *testing.T) {
		id, err := store.Insert(ctx, "stretch", remindAt)
		if err != nil {
			t.Fatalf("Insert() unexpected error: %v", err)
		}

		if err := store.MarkTriggered(ctx, id); err != nil {
			t.Fatalf("MarkTriggered() unexpected error: %v", err)
		}

		pending, err := store.ListPending(ctx)
		if err != nil {
			t.Fatalf("ListPending() unexpected error: %v", err)
		}
		for _, r := range pending {
			if r.ID == id {
				t.Errorf("triggered reminder %d still pending", id)
			}
			if r.Triggered {
				t.Errorf("pending reminder %d has Triggered = true", r.ID)
			}
		}
		if len(pending) != 2 {
			t.Errorf("pending count = %d, want 2", len(pending))
		}
	})

	t.Run("mark triggered is idempotent", func(t *testing.T) {
		id, err := store.Insert(ctx, "twice", remindAt)
		if err != nil {
			t.Fatalf("Insert() unexpected error: %v", err)
		}

		for i := 0; i < 2; i++ {
			if err := store.MarkTriggered(ctx, id); err != nil {
				t.Fatalf("MarkTriggered() #%d unexpected error: %v", i+1, err)
			}
		}

		got, err := store.Get(ctx, id)
		if err != nil {
			t.Fatalf("Get() unexpected error: %v", err)
		}
		if !got.Triggered {
			t.Error("Triggered = false, want true")
		}
	})

	t.Run("mark triggered on unknown id is a no-op", func(t *testing.T) {
		if err := store.MarkTriggered(ctx, 999_999); err != nil {
			t.Errorf("MarkTriggered() unexpected error: %v", err)
		}
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := store.Get(ctx, 999_999)
		if !errors.Is(err, domain.ErrReminderNotFound) {
			t.Errorf("Get() error = %v, want %v", err, domain.ErrReminderNotFound)
		}
	})

	t.Run("concurrent insert and mark", func(t *testing.T) {
		const workers = 8

		var wg sync.WaitGroup
		errs := make(chan error, workers*2)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id, err := store.Insert(ctx, "concurrent", remindAt)
				if err != nil {
					errs <- err
					return
				}
				if err := store.MarkTriggered(ctx, id); err != nil {
					errs <- err
				}
			}()
		}

		wg.Wait()
		close(errs)

		for err := range errs {
			t.Errorf("concurrent access error: %v", err)
		}
	})

	t.Run("ping", func(t *testing.T) {
		if err := store.Ping(ctx); err != nil {
			t.Errorf("Ping() unexpected error: %v", err)
		}
	})
}
