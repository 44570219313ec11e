package domain

import "context"

//go:generate mockgen -source=notifier.go -destination=notifier_mock.go -package=domain

// Notifier presents text to the user.
type Notifier interface {
	Speak(ctx context.Context, text string) error
}
