package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
	"github.com/KasumiMercury/primind-voice-assistant/internal/service/reminder"
)

type ReminderService interface {
	CreateReminder(ctx context.Context, message, phrase string, now time.Time) (*reminder.CreateResult, error)
	Pending(ctx context.Context) ([]domain.Reminder, error)
	Get(ctx context.Context, id int64) (*domain.Reminder, error)
	CancelReminder(ctx context.Context, id int64) (bool, error)
}

type createReminderRequest struct {
	Message    string `json:"message" validate:"required,max=500"`
	TimePhrase string `json:"time_phrase" validate:"required,max=100"`
}

type reminderResponse struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	RemindAt  string `json:"remind_at"`
	Triggered bool   `json:"triggered"`
}

type createReminderResponse struct {
	ID       int64  `json:"id"`
	RemindAt string `json:"remind_at"`
	Armed    bool   `json:"armed"`
}

type cancelReminderResponse struct {
	ID        int64 `json:"id"`
	Cancelled bool  `json:"cancelled"`
}

type ReminderHandler struct {
	service ReminderService
	now     func() time.Time
}

func NewReminderHandler(service ReminderService) *ReminderHandler {
	return &ReminderHandler{
		service: service,
		now:     time.Now,
	}
}

func (h *ReminderHandler) HandleCreate(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "request unmarshal failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	if err := validateRequest(&req); err != nil {
		slog.WarnContext(ctx, "request validation failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.service.CreateReminder(ctx, req.Message, req.TimePhrase, h.now())
	if err != nil {
		var parseErr *reminder.ParseError
		switch {
		case errors.As(err, &parseErr):
			respondError(c, http.StatusUnprocessableEntity, "unparseable_time", err.Error())
		case errors.Is(err, domain.ErrStoreUnavailable):
			slog.ErrorContext(ctx, "failed to create reminder", slog.String("error", err.Error()))
			respondError(c, http.StatusServiceUnavailable, "store_unavailable", "reminder store is unavailable")
		default:
			slog.ErrorContext(ctx, "failed to create reminder", slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "processing_error", "failed to create reminder")
		}
		return
	}

	c.JSON(http.StatusCreated, createReminderResponse{
		ID:       result.ID,
		RemindAt: domain.FormatRemindAt(result.RemindAt),
		Armed:    result.Armed,
	})
}

func (h *ReminderHandler) HandlePending(c *gin.Context) {
	ctx := c.Request.Context()

	pending, err := h.service.Pending(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list pending reminders", slog.String("error", err.Error()))
		respondError(c, http.StatusServiceUnavailable, "store_unavailable", "reminder store is unavailable")
		return
	}

	resp := make([]reminderResponse, 0, len(pending))
	for i := range pending {
		resp = append(resp, toReminderResponse(&pending[i]))
	}

	c.JSON(http.StatusOK, gin.H{"reminders": resp})
}

func (h *ReminderHandler) HandleGet(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := reminderID(c)
	if !ok {
		return
	}

	r, err := h.service.Get(ctx, id)
	switch {
	case errors.Is(err, domain.ErrReminderNotFound):
		respondError(c, http.StatusNotFound, "not_found", "reminder not found")
		return
	case err != nil:
		slog.ErrorContext(ctx, "failed to get reminder",
			slog.Int64("reminder_id", id),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusServiceUnavailable, "store_unavailable", "reminder store is unavailable")
		return
	}

	c.JSON(http.StatusOK, toReminderResponse(r))
}

// HandleCancel disarms a pending reminder. Cancelling a reminder that already
// fired answers 200 with cancelled=false.
func (h *ReminderHandler) HandleCancel(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := reminderID(c)
	if !ok {
		return
	}

	cancelled, err := h.service.CancelReminder(ctx, id)
	switch {
	case errors.Is(err, domain.ErrReminderNotFound):
		respondError(c, http.StatusNotFound, "not_found", "reminder not found")
		return
	case err != nil:
		slog.ErrorContext(ctx, "failed to cancel reminder",
			slog.Int64("reminder_id", id),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusServiceUnavailable, "store_unavailable", "reminder store is unavailable")
		return
	}

	c.JSON(http.StatusOK, cancelReminderResponse{
		ID:        id,
		Cancelled: cancelled,
	})
}

func reminderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func toReminderResponse(r *domain.Reminder) reminderResponse {
	return reminderResponse{
		ID:        r.ID,
		Message:   r.Message,
		RemindAt:  domain.FormatRemindAt(r.RemindAt),
		Triggered: r.Triggered,
	}
}
