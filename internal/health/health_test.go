package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus Status
	}{
		{name: "store reachable", wantStatus: StatusHealthy},
		{name: "store down", pingErr: errors.New("connection refused"), wantStatus: StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewChecker(stubPinger{err: tt.pingErr}, "sqlite", func() int { return 3 }, "v1")

			status := checker.Check(context.Background())

			assert.Equal(t, tt.wantStatus, status.Status)
			assert.Equal(t, tt.wantStatus, status.Checks["sqlite"].Status)
			require.NotNil(t, status.ArmedReminders)
			assert.Equal(t, 3, *status.ArmedReminders)
		})
	}
}

func TestReadyHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	checker := NewChecker(stubPinger{err: errors.New("down")}, "redis", nil, "v1")
	r := gin.New()
	r.GET("/health/ready", checker.ReadyHandler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "down", body.Checks["redis"].Error)
	assert.Nil(t, body.ArmedReminders)
}
