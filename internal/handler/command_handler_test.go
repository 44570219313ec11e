package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-voice-assistant/internal/service/command"
)

type echoDispatcher struct {
	action       command.Action
	heardAnswers []string
}

func (d *echoDispatcher) Dispatch(ctx context.Context, session *command.Session, text string) command.Action {
	_ = session.Speaker.Speak(ctx, "you said "+text)
	if session.Listener != nil {
		d.heardAnswers = append(d.heardAnswers, "unexpected")
	}
	return d.action
}

type recordingNotifier struct {
	lines []string
}

func (n *recordingNotifier) Speak(_ context.Context, text string) error {
	n.lines = append(n.lines, text)
	return nil
}

func postCommand(t *testing.T, h *CommandHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	r.POST("/api/v1/commands", h.HandleCommand)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleCommand(t *testing.T) {
	dispatcher := &echoDispatcher{action: command.ActionContinue}
	mirror := &recordingNotifier{}
	h := NewCommandHandler(dispatcher, mirror)

	w := postCommand(t, h, `{"text":"what is the weather"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp commandResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"you said what is the weather"}, resp.Replies)
	assert.False(t, resp.Exit)
	assert.Equal(t, []string{"you said what is the weather"}, mirror.lines)
	assert.Empty(t, dispatcher.heardAnswers, "http sessions have no listener")
}

func TestHandleCommandExitIsOnlyAcknowledged(t *testing.T) {
	h := NewCommandHandler(&echoDispatcher{action: command.ActionExit}, nil)

	w := postCommand(t, h, `{"text":"exit"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp commandResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Exit)
}

func TestHandleCommandRejectsEmptyText(t *testing.T) {
	h := NewCommandHandler(&echoDispatcher{}, nil)

	w := postCommand(t, h, `{"text":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
