package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
)

type reminderRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Message   string    `gorm:"not null"`
	RemindAt  time.Time `gorm:"not null"`
	Triggered bool      `gorm:"not null;default:false;index"`
}

func (reminderRecord) TableName() string {
	return "reminders"
}

func (r reminderRecord) toDomain() domain.Reminder {
	return domain.Reminder{
		ID:        r.ID,
		Message:   r.Message,
		RemindAt:  domain.TruncateRemindAt(r.RemindAt.In(time.Local)),
		Triggered: r.Triggered,
	}
}

type gormStore struct {
	db *gorm.DB
}

func NewPostgresStore(dsn string) (domain.ReminderStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, unavailable("open", err)
	}

	return NewGormStore(db)
}

// NewGormStore migrates the reminders table on db and wraps it.
func NewGormStore(db *gorm.DB) (domain.ReminderStore, error) {
	if err := db.AutoMigrate(&reminderRecord{}); err != nil {
		return nil, unavailable("migrate", err)
	}

	return &gormStore{db: db}, nil
}

func (s *gormStore) Insert(ctx context.Context, message string, remindAt time.Time) (int64, error) {
	record := reminderRecord{
		Message:  message,
		RemindAt: domain.TruncateRemindAt(remindAt),
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return 0, unavailable("insert", err)
	}

	return record.ID, nil
}

func (s *gormStore) ListPending(ctx context.Context) ([]domain.Reminder, error) {
	var records []reminderRecord

	err := s.db.WithContext(ctx).
		Where("triggered = ?", false).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, unavailable("list pending", err)
	}

	reminders := make([]domain.Reminder, 0, len(records))
	for _, r := range records {
		reminders = append(reminders, r.toDomain())
	}

	return reminders, nil
}

func (s *gormStore) MarkTriggered(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).
		Model(&reminderRecord{}).
		Where("id = ?", id).
		Update("triggered", true).Error
	if err != nil {
		return unavailable("mark triggered", err)
	}
	return nil
}

func (s *gormStore) Get(ctx context.Context, id int64) (*domain.Reminder, error) {
	var record reminderRecord

	if err := s.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReminderNotFound
		}
		return nil, unavailable("get", err)
	}

	reminder := record.toDomain()
	return &reminder, nil
}

func (s *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return unavailable("ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func (s *gormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
