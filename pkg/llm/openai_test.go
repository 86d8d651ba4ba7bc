package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/einsteinmuna/dialoguedesk/pkg/config"
)

func testConfig(baseURL string) *config.OpenAIConfig {
	return &config.OpenAIConfig{
		APIKey:          "test-key",
		BaseURL:         baseURL,
		ChatModel:       "gpt-3.5-turbo",
		TranscribeModel: "whisper-1",
		MaxTokens:       1000,
	}
}

func TestComplete_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if req.Model != "gpt-3.5-turbo" {
			t.Fatalf("unexpected model %s", req.Model)
		}
		if len(req.Messages) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(req.Messages))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "complaint"}},
			},
		})
	}))
	defer ts.Close()

	client := NewOpenAIClient(testConfig(ts.URL))

	content, err := client.Complete(context.Background(), []ChatMessage{
		{Role: "system", Content: "classify"},
		{Role: "user", Content: "my heater is broken"},
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if content != "complaint" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	client := NewOpenAIClient(testConfig(ts.URL))
	if _, err := client.Complete(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestComplete_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewOpenAIClient(testConfig(ts.URL))
	if _, err := client.Complete(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestTranscribe_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("invalid multipart form: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Fatalf("unexpected model %q", got)
		}
		if got := r.FormValue("response_format"); got != "text" {
			t.Fatalf("unexpected response_format %q", got)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "standup.mp3" {
			t.Fatalf("unexpected filename %s", header.Filename)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("hello from the meeting\n"))
	}))
	defer ts.Close()

	client := NewOpenAIClient(testConfig(ts.URL))

	text, err := client.Transcribe(context.Background(), "standup.mp3", bytes.NewReader([]byte("fake-audio")))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if text != "hello from the meeting" {
		t.Fatalf("unexpected transcript %q", text)
	}
}

func TestTranscribe_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	client := NewOpenAIClient(testConfig(ts.URL))
	if _, err := client.Transcribe(context.Background(), "a.mp3", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for 400 response")
	}
}
