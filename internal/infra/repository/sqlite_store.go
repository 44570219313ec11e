package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS reminders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	message TEXT NOT NULL,
	remind_at TEXT NOT NULL,
	triggered INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_reminders_pending ON reminders(triggered, remind_at);
`

const sqliteBusyTimeout = 5 * time.Second

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the reminder database at path.
// All access goes through a single connection, so row-level statements from
// the command flow and from fire callbacks are serialized by the driver.
func NewSQLiteStore(path string) (domain.ReminderStore, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL", path, sqliteBusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, unavailable("open", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, unavailable("migrate", err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Insert(ctx context.Context, message string, remindAt time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO reminders (message, remind_at) VALUES (?, ?)`,
		message, domain.FormatRemindAt(remindAt),
	)
	if err != nil {
		return 0, unavailable("insert", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, unavailable("insert", err)
	}

	return id, nil
}

func (s *sqliteStore) ListPending(ctx context.Context) ([]domain.Reminder, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, message, remind_at FROM reminders WHERE triggered = 0 ORDER BY id`,
	)
	if err != nil {
		return nil, unavailable("list pending", err)
	}
	defer rows.Close()

	reminders := make([]domain.Reminder, 0)
	for rows.Next() {
		var (
			r        domain.Reminder
			remindAt string
		)
		if err := rows.Scan(&r.ID, &r.Message, &remindAt); err != nil {
			return nil, unavailable("list pending", err)
		}

		r.RemindAt, err = domain.ParseRemindAt(remindAt)
		if err != nil {
			return nil, fmt.Errorf("%w: reminder %d: %w", ErrInvalidReminderData, r.ID, err)
		}
		reminders = append(reminders, r)
	}

	if err := rows.Err(); err != nil {
		return nil, unavailable("list pending", err)
	}

	return reminders, nil
}

func (s *sqliteStore) MarkTriggered(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE reminders SET triggered = 1 WHERE id = ?`, id); err != nil {
		return unavailable("mark triggered", err)
	}
	return nil
}

func (s *sqliteStore) Get(ctx context.Context, id int64) (*domain.Reminder, error) {
	var (
		r         domain.Reminder
		remindAt  string
		triggered int
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT id, message, remind_at, triggered FROM reminders WHERE id = ?`, id,
	).Scan(&r.ID, &r.Message, &remindAt, &triggered)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReminderNotFound
		}
		return nil, unavailable("get", err)
	}

	r.RemindAt, err = domain.ParseRemindAt(remindAt)
	if err != nil {
		return nil, fmt.Errorf("%w: reminder %d: %w", ErrInvalidReminderData, r.ID, err)
	}
	r.Triggered = triggered != 0

	return &r, nil
}

func (s *sqliteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
