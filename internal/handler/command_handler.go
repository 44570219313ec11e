package handler

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-voice-assistant/internal/domain"
	"github.com/KasumiMercury/primind-voice-assistant/internal/infra/speech"
	"github.com/KasumiMercury/primind-voice-assistant/internal/service/command"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, session *command.Session, text string) command.Action
}

type commandRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

type commandResponse struct {
	Replies []string `json:"replies"`
	Exit    bool     `json:"exit,omitempty"`
}

// replyCollector keeps what a single HTTP command said.
type replyCollector struct {
	mu      sync.Mutex
	replies []string
}

func (r *replyCollector) Speak(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies = append(r.replies, text)
	return nil
}

func (r *replyCollector) Name() string {
	return "http_reply"
}

func (r *replyCollector) collected() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.replies...)
}

type CommandHandler struct {
	dispatcher Dispatcher
	mirror     domain.Notifier
}

// NewCommandHandler dispatches typed commands. Replies are returned to the
// caller and also spoken to mirror when it is non-nil.
func NewCommandHandler(dispatcher Dispatcher, mirror domain.Notifier) *CommandHandler {
	return &CommandHandler{
		dispatcher: dispatcher,
		mirror:     mirror,
	}
}

func (h *CommandHandler) HandleCommand(c *gin.Context) {
	ctx := c.Request.Context()

	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}
	if err := validateRequest(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	collector := &replyCollector{}
	notifiers := []domain.Notifier{collector}
	if h.mirror != nil {
		notifiers = append(notifiers, h.mirror)
	}

	// No listener: follow-up questions get no answer over HTTP.
	session := &command.Session{Speaker: speech.NewFanOut(notifiers...)}

	action := h.dispatcher.Dispatch(ctx, session, req.Text)
	if action == command.ActionExit {
		slog.InfoContext(ctx, "exit requested over http, ignoring")
	}

	c.JSON(http.StatusOK, commandResponse{
		Replies: collector.collected(),
		Exit:    action == command.ActionExit,
	})
}
