// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGigaChat serves the OAuth exchange under /oauth and an SSE completion
// stream under /chat/completions.
type fakeGigaChat struct {
	chunks     []string
	oauthCalls int
	chatCalls  int
	lastRqUID  string
	lastAuth   string
	lastScope  string
	chatStatus int
}

func (f *fakeGigaChat) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth", func(w http.ResponseWriter, r *http.Request) {
		f.oauthCalls++
		f.lastRqUID = r.Header.Get("RqUID")
		f.lastAuth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err == nil {
			f.lastScope = r.PostFormValue("scope")
		}
		expiry := time.Now().Add(30 * time.Minute).UnixMilli()
		fmt.Fprintf(w, `{"access_token":"test-token","expires_at":%d}`, expiry)
	})
	mux.HandleFunc("/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		f.chatCalls++
		if f.chatStatus != 0 {
			w.WriteHeader(f.chatStatus)
			fmt.Fprint(w, `{"error":{"message":"model unavailable"}}`)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, chunk := range f.chunks {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", chunk)
			flusher.Flush()
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
		flusher.Flush()
	})
	return mux
}

func newTestClient(t *testing.T, fake *fakeGigaChat) *Client {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return NewClient(Settings{
		Credentials: "dGVzdDpjcmVkcw==",
		BaseURL:     srv.URL,
		OAuthURL:    srv.URL + "/oauth",
	})
}

func TestStreamDeliversChunksInOrder(t *testing.T) {
	fake := &fakeGigaChat{chunks: []string{"Привет", ", ", "мир", "!"}}
	client := newTestClient(t, fake)

	stream, err := client.Stream(context.Background(), "say hello", Options{})
	require.NoError(t, err)
	defer stream.Close()

	var got []string
	for chunk := range stream.Chunks() {
		got = append(got, chunk)
	}
	require.NoError(t, stream.Err())
	assert.Equal(t, []string{"Привет", ", ", "мир", "!"}, got)
}

func TestGenerateSyncMatchesStream(t *testing.T) {
	fake := &fakeGigaChat{chunks: []string{"one ", "two ", "three"}}
	client := newTestClient(t, fake)

	text, err := client.GenerateSync(context.Background(), "count", Options{})
	require.NoError(t, err)
	assert.Equal(t, "one two three", text)
}

func TestStreamCredentialsMissing(t *testing.T) {
	client := NewClient(Settings{})

	_, err := client.Stream(context.Background(), "prompt", Options{})
	assert.ErrorIs(t, err, ErrCredentialsMissing)
}

func TestStreamTransportError(t *testing.T) {
	fake := &fakeGigaChat{chatStatus: http.StatusServiceUnavailable}
	client := newTestClient(t, fake)

	_, err := client.Stream(context.Background(), "prompt", Options{})
	require.Error(t, err)
	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.Contains(t, err.Error(), "gigachat api:")
}

func TestOAuthRequestShape(t *testing.T) {
	fake := &fakeGigaChat{chunks: []string{"ok"}}
	client := newTestClient(t, fake)

	_, err := client.GenerateSync(context.Background(), "prompt", Options{})
	require.NoError(t, err)

	assert.Equal(t, "Basic dGVzdDpjcmVkcw==", fake.lastAuth)
	assert.Equal(t, defaultScope, fake.lastScope)
	assert.NotEmpty(t, fake.lastRqUID)
}

func TestTokenCachedAcrossCalls(t *testing.T) {
	fake := &fakeGigaChat{chunks: []string{"ok"}}
	client := newTestClient(t, fake)

	for i := 0; i < 3; i++ {
		_, err := client.GenerateSync(context.Background(), "prompt", Options{})
		require.NoError(t, err)
	}

	assert.Equal(t, 3, fake.chatCalls)
	assert.Equal(t, 1, fake.oauthCalls)
}

func TestSessionOverridesApplyToNextCall(t *testing.T) {
	client := NewClient(Settings{Model: "GigaChat-2", Temperature: 0.5})

	assert.Equal(t, "GigaChat-2", client.effectiveModel(Options{}))
	assert.InDelta(t, 0.5, client.effectiveTemperature(Options{}), 1e-9)

	client.SetModel("GigaChat-2-Pro")
	client.SetTemperature(0.3)

	assert.Equal(t, "GigaChat-2-Pro", client.effectiveModel(Options{}))
	assert.InDelta(t, 0.3, client.effectiveTemperature(Options{}), 1e-9)

	// A per-call option still beats the session override.
	assert.Equal(t, "GigaChat-2-Max", client.effectiveModel(Options{Model: "GigaChat-2-Max"}))
	assert.InDelta(t, 0.8, client.effectiveTemperature(Options{Temperature: Float(0.8)}), 1e-9)
}

func TestModelResolutionOrder(t *testing.T) {
	t.Setenv("GIGACHAT_MODEL", "from-env")

	client := NewClient(Settings{
		Model:   "from-config",
		Secrets: map[string]string{"gigachat-model": "from-secret"},
	})
	assert.Equal(t, "from-secret", client.effectiveModel(Options{}))

	client = NewClient(Settings{Model: "from-config"})
	assert.Equal(t, "from-env", client.effectiveModel(Options{}))

	t.Setenv("GIGACHAT_MODEL", "")
	assert.Equal(t, "from-config", client.effectiveModel(Options{}))

	client = NewClient(Settings{})
	assert.Equal(t, defaultModel, client.effectiveModel(Options{}))
}

func TestStreamEarlyClose(t *testing.T) {
	fake := &fakeGigaChat{chunks: []string{strings.Repeat("a", 64), strings.Repeat("b", 64), "tail"}}
	client := newTestClient(t, fake)

	stream, err := client.Stream(context.Background(), "prompt", Options{})
	require.NoError(t, err)

	<-stream.Chunks()
	stream.Close()
	stream.Close()

	_, open := <-stream.Chunks()
	assert.False(t, open)
	assert.NoError(t, stream.Err(), "early close is a clean finish")
}

func TestStreamContextCancelled(t *testing.T) {
	fake := &fakeGigaChat{chunks: []string{"ok"}}
	client := newTestClient(t, fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Stream(ctx, "prompt", Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
