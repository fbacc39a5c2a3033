package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantPwd    string
		wantErr    string
	}{
		{name: "defaults", body: `{}`, wantStatus: http.StatusOK, wantPwd: strings.Repeat("A", DefaultLength)},
		{name: "empty body", body: ``, wantStatus: http.StatusOK, wantPwd: strings.Repeat("A", DefaultLength)},
		{name: "digits", body: `{"length":5,"upper":false,"lower":false,"symbol":false}`, wantStatus: http.StatusOK, wantPwd: "00000"},
		{name: "zero length", body: `{"length":0}`, wantStatus: http.StatusOK, wantPwd: ""},
		{name: "no classes", body: `{"upper":false,"lower":false,"digit":false,"symbol":false}`, wantStatus: http.StatusBadRequest, wantErr: MsgNoClass},
		{name: "too long", body: `{"length":4096}`, wantStatus: http.StatusBadRequest, wantErr: "length must be at most 2048"},
		{name: "bad json", body: `{"length":`, wantStatus: http.StatusBadRequest, wantErr: "invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestCLI(zeroSampler(), &fakeClipboard{})
			h := newRouter(m.Sampler, m.Logger, newIPRateLimiter(1000, 1000))
			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantErr != "" {
				var resp map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.wantErr, resp["error"])
				return
			}
			var resp generateResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantPwd, resp.Password)
			assert.Equal(t, len(tt.wantPwd), resp.Length)
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	m, _ := newTestCLI(zeroSampler(), &fakeClipboard{})
	h := newRouter(m.Sampler, m.Logger, newIPRateLimiter(0.001, 2))

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestServe_StopsOnCancel(t *testing.T) {
	t.Setenv("PWDGEN_ADDR", "")
	m, _ := newTestCLI(zeroSampler(), &fakeClipboard{})
	cmd := newCLI(m)
	cmd.SetArgs([]string{"serve", "--addr", "127.0.0.1:0"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after context cancellation")
	}
}

func TestRateLimiterCleanup_StopsOnCancel(t *testing.T) {
	rl := newIPRateLimiter(1, 1)
	rl.getLimiter("192.0.2.1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rl.cleanup(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not return after cancellation")
	}
	assert.Len(t, rl.visitors, 1)
}
