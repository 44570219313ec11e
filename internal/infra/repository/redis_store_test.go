package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/KasumiMercury/primind-voice-assistant/internal/testutil"
)

func TestRedisStoreContract(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	runStoreContract(t, NewRedisStore(client))
}

func TestRedisStoreMarkTriggeredRemovesFromPendingSet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	store := NewRedisStore(client)

	id, err := store.Insert(ctx, "call mom", baseRemindAt)
	if err != nil {
		t.Fatalf("Insert() unexpected error: %v", err)
	}

	isMember, err := client.SIsMember(ctx, reminderPendingKey, id).Result()
	if err != nil {
		t.Fatalf("SIsMember() unexpected error: %v", err)
	}
	if !isMember {
		t.Fatalf("reminder %d not in pending set after insert", id)
	}

	if err := store.MarkTriggered(ctx, id); err != nil {
		t.Fatalf("MarkTriggered() unexpected error: %v", err)
	}

	isMember, err = client.SIsMember(ctx, reminderPendingKey, id).Result()
	if err != nil {
		t.Fatalf("SIsMember() unexpected error: %v", err)
	}
	if isMember {
		t.Errorf("reminder %d still in pending set after MarkTriggered", id)
	}

	triggered, err := client.HGet(ctx, reminderKey(id), fieldTriggered).Result()
	if err != nil {
		t.Fatalf("HGet() unexpected error: %v", err)
	}
	if triggered != triggeredTrue {
		t.Errorf("triggered field = %q, want %q", triggered, triggeredTrue)
	}
}

func TestRedisStoreCorruptDataNamesReminder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	store := NewRedisStore(client)

	id, err := store.Insert(ctx, "call mom", baseRemindAt)
	if err != nil {
		t.Fatalf("Insert() unexpected error: %v", err)
	}
	if err := client.HSet(ctx, reminderKey(id), fieldRemindAt, "tomorrow-ish").Err(); err != nil {
		t.Fatalf("HSet() unexpected error: %v", err)
	}

	_, err = store.Get(ctx, id)
	if !errors.Is(err, ErrInvalidReminderData) {
		t.Fatalf("Get() error = %v, want ErrInvalidReminderData", err)
	}
	if want := "reminder " + strconv.FormatInt(id, 10); !strings.Contains(err.Error(), want) {
		t.Errorf("Get() error = %q, want it to name %q", err, want)
	}
	if !strings.Contains(err.Error(), "tomorrow-ish") {
		t.Errorf("Get() error = %q, want the parse cause", err)
	}

	if err := client.SAdd(ctx, reminderPendingKey, "not-an-id").Err(); err != nil {
		t.Fatalf("SAdd() unexpected error: %v", err)
	}

	_, err = store.ListPending(ctx)
	if !errors.Is(err, ErrInvalidReminderData) {
		t.Fatalf("ListPending() error = %v, want ErrInvalidReminderData", err)
	}
}
