// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm wraps the GigaChat chat-completion API with streaming and
// synchronous text generation. Model and temperature resolve at call time
// through a layered chain (per-call option, session override, secret store,
// environment variable, static configuration, hardcoded default), so a
// setting changed mid-session takes effect on the next call.
package llm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

var log = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

const (
	defaultModel       = "GigaChat-2-Max"
	defaultScope       = "GIGACHAT_API_PERS"
	defaultTemperature = 0.7
	defaultBaseURL     = "https://gigachat.devices.sberbank.ru/api/v1"
	defaultOAuthURL    = "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"

	// maxTokens caps every completion request.
	maxTokens = 4000
)

// Settings is the static configuration for a Client. Zero values fall
// through the resolution chain at call time.
type Settings struct {
	Credentials string
	Scope       string
	Model       string
	Temperature float64
	BaseURL     string
	OAuthURL    string

	// Secrets holds values loaded from the file-per-key secret store.
	Secrets map[string]string

	// HTTPClient carries the TLS configuration; nil means
	// http.DefaultClient.
	HTTPClient *http.Client
}

// Options adjusts a single generation call.
type Options struct {
	// Model overrides the model identifier for this call only.
	Model string

	// Temperature overrides the sampling temperature for this call only.
	// Nil means "resolve from session/config/default".
	Temperature *float64
}

// Float returns a pointer for Options.Temperature literals.
func Float(v float64) *float64 {
	return &v
}

// Client talks to a GigaChat-compatible chat-completion API. It performs no
// retries: a failed call surfaces immediately and must be re-initiated by
// the user.
type Client struct {
	settings   Settings
	httpClient *http.Client

	mu           sync.Mutex
	sessionModel string
	sessionTemp  *float64
	token        accessToken
}

// NewClient builds a Client from settings.
func NewClient(settings Settings) *Client {
	httpClient := settings.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{settings: settings, httpClient: httpClient}
}

// SetModel installs a session-level model override. It takes effect on the
// next call.
func (c *Client) SetModel(model string) {
	c.mu.Lock()
	c.sessionModel = model
	c.mu.Unlock()
}

// SetTemperature installs a session-level temperature override. It takes
// effect on the next call.
func (c *Client) SetTemperature(t float64) {
	c.mu.Lock()
	c.sessionTemp = &t
	c.mu.Unlock()
}

func (c *Client) effectiveModel(opts Options) string {
	c.mu.Lock()
	session := c.sessionModel
	c.mu.Unlock()

	return resolveString(defaultModel,
		fromValue(opts.Model),
		fromValue(session),
		fromMap(c.settings.Secrets, "gigachat-model"),
		fromEnv("GIGACHAT_MODEL"),
		fromValue(c.settings.Model),
	)
}

func (c *Client) effectiveTemperature(opts Options) float64 {
	c.mu.Lock()
	session := c.sessionTemp
	c.mu.Unlock()

	fallback := defaultTemperature
	if c.settings.Temperature > 0 {
		fallback = c.settings.Temperature
	}

	return resolveFloat(fallback,
		fromFloat(opts.Temperature),
		fromFloat(session),
		fromEnv("GIGACHAT_TEMPERATURE"),
	)
}

func (c *Client) baseURL() string {
	return resolveString(defaultBaseURL,
		fromValue(c.settings.BaseURL),
		fromEnv("GIGACHAT_BASE_URL"),
	)
}

func (c *Client) oauthURL() string {
	return resolveString(defaultOAuthURL,
		fromValue(c.settings.OAuthURL),
		fromEnv("GIGACHAT_OAUTH_URL"),
	)
}

// Stream opens one chat request with a single user-role message and
// forwards each incoming content delta as it arrives. Transport and
// API-level failures surface as *TransportError; the stream ends when the
// provider signals completion or the caller closes it.
func (c *Client) Stream(ctx context.Context, prompt string, opts Options) (TextStream, error) {
	model := c.effectiveModel(opts)
	temperature := c.effectiveTemperature(opts)

	token, err := c.bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	cfg := openai.DefaultConfig(token)
	cfg.BaseURL = c.baseURL()
	cfg.HTTPClient = c.httpClient
	api := openai.NewClientWithConfig(cfg)

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(temperature),
		MaxTokens:   maxTokens,
		Stream:      true,
	}

	streamCtx, cancel := context.WithCancel(ctx)
	sse, err := api.CreateChatCompletionStream(streamCtx, req)
	if err != nil {
		cancel()
		return nil, &TransportError{Err: err}
	}

	log.Debug().
		Str("model", model).
		Float64("temperature", temperature).
		Int("prompt_bytes", len(prompt)).
		Msg("generation stream opened")

	s := newStream(cancel)
	go func() {
		defer close(s.ch)
		defer sse.Close()
		for {
			resp, err := sse.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				// A cancelled context means the consumer closed early,
				// which is a clean finish, not a failure.
				if streamCtx.Err() != nil {
					return
				}
				s.setErr(&TransportError{Err: err})
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			delta := resp.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			select {
			case s.ch <- delta:
			case <-streamCtx.Done():
				return
			}
		}
	}()

	return s, nil
}

// GenerateSync drains a stream and concatenates every fragment in arrival
// order. There is no separate code path, so a synchronous call returns
// byte-identical text to the equivalent streamed call.
func (c *Client) GenerateSync(ctx context.Context, prompt string, opts Options) (string, error) {
	s, err := c.Stream(ctx, prompt, opts)
	if err != nil {
		return "", err
	}
	defer s.Close()

	var b strings.Builder
	for chunk := range s.Chunks() {
		b.WriteString(chunk)
	}
	if err := s.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}
