package reminder

import (
	"time"

	"github.com/KasumiMercury/primind-voice-assistant/internal/service/scheduler"
)

//go:generate mockgen -source=scheduler.go -destination=scheduler_mock.go -package=reminder

type Scheduler interface {
	Arm(id int64, message string, fireAt time.Time, onFire scheduler.FireFunc) error
	Cancel(id int64) scheduler.State
}
