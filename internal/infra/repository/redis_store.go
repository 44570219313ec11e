package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
)

const (
	reminderSeqKey     = "reminder:seq"
	reminderKeyPrefix  = "reminder:item:"
	reminderPendingKey = "reminder:pending"

	fieldMessage   = "message"
	fieldRemindAt  = "remind_at"
	fieldTriggered = "triggered"

	triggeredFalse = "0"
	triggeredTrue  = "1"
)

// markTriggeredScript flips the flag and drops the id from the pending set in
// one step. Unknown ids are left alone.
var markTriggeredScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return 0
end
redis.call("HSET", KEYS[1], "triggered", "1")
redis.call("SREM", KEYS[2], ARGV[1])
return 1
`)

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) domain.ReminderStore {
	return &redisStore{
		client: client,
	}
}

func reminderKey(id int64) string {
	return reminderKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *redisStore) Insert(ctx context.Context, message string, remindAt time.Time) (int64, error) {
	id, err := r.client.Incr(ctx, reminderSeqKey).Result()
	if err != nil {
		return 0, unavailable("insert", err)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, reminderKey(id),
		fieldMessage, message,
		fieldRemindAt, domain.FormatRemindAt(remindAt),
		fieldTriggered, triggeredFalse,
	)
	pipe.SAdd(ctx, reminderPendingKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, unavailable("insert", err)
	}

	return id, nil
}

func (r *redisStore) ListPending(ctx context.Context) ([]domain.Reminder, error) {
	members, err := r.client.SMembers(ctx, reminderPendingKey).Result()
	if err != nil {
		return nil, unavailable("list pending", err)
	}

	reminders := make([]domain.Reminder, 0, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: pending member %q: %w", ErrInvalidReminderData, member, err)
		}

		reminder, err := r.Get(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrReminderNotFound) {
				continue
			}
			return nil, err
		}
		if reminder.Triggered {
			continue
		}
		reminders = append(reminders, *reminder)
	}

	sortByID(reminders)

	return reminders, nil
}

func (r *redisStore) MarkTriggered(ctx context.Context, id int64) error {
	keys := []string{reminderKey(id), reminderPendingKey}
	if err := markTriggeredScript.Run(ctx, r.client, keys, id).Err(); err != nil {
		return unavailable("mark triggered", err)
	}
	return nil
}

func (r *redisStore) Get(ctx context.Context, id int64) (*domain.Reminder, error) {
	fields, err := r.client.HGetAll(ctx, reminderKey(id)).Result()
	if err != nil {
		return nil, unavailable("get", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrReminderNotFound
	}

	remindAt, err := domain.ParseRemindAt(fields[fieldRemindAt])
	if err != nil {
		return nil, fmt.Errorf("%w: reminder %d: %w", ErrInvalidReminderData, id, err)
	}

	return &domain.Reminder{
		ID:        id,
		Message:   fields[fieldMessage],
		RemindAt:  remindAt,
		Triggered: fields[fieldTriggered] == triggeredTrue,
	}, nil
}

func (r *redisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func (r *redisStore) Close() error {
	return r.client.Close()
}
