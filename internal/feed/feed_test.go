package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fcurrie/ledsign-golang/internal/types"
)

// TestStatic tests chunked hand-out and exhaustion
func TestStatic(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		chunkSize int
		want      []string
	}{
		{
			name:      "even chunks",
			text:      "ABCDEF",
			chunkSize: 2,
			want:      []string{"AB", "CD", "EF", "", ""},
		},
		{
			name:      "ragged tail",
			text:      "ABCDE",
			chunkSize: 2,
			want:      []string{"AB", "CD", "E", ""},
		},
		{
			name:      "empty message",
			text:      "",
			chunkSize: 4,
			want:      []string{"", ""},
		},
		{
			name:      "multibyte runes stay whole",
			text:      "ééé",
			chunkSize: 2,
			want:      []string{"éé", "é", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStatic(tt.text, tt.chunkSize)
			for i, want := range tt.want {
				if got := s.Next(0); got != want {
					t.Errorf("Next() call %d = %q, want %q", i, got, want)
				}
			}
		})
	}
}

// TestFormatter tests display normalization. The formatter only rewrites
// display text; fed-length accounting happens in the buffer and always uses
// the source character count.
func TestFormatter(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain ascii untouched", in: "HELLO 42", want: "HELLO 42"},
		{name: "newline and tab become spaces", in: "A\nB\tC", want: "A B C"},
		{name: "carriage return becomes space", in: "A\r\nB", want: "A  B"},
		{name: "wide rune becomes placeholder", in: "A漢B", want: "A?B"},
		{name: "zero width rune dropped", in: "A\u0301B", want: "AB"},
		{name: "empty stays empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Formatter(tt.in); got != tt.want {
				t.Errorf("Formatter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestClientStream tests the WebSocket client against a local feed server
func TestClientStream(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		if err := conn.WriteMessage(websocket.TextMessage, []byte("HELLO ")); err != nil {
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte("WORLD")); err != nil {
			return
		}
		// Drain client requests until the connection goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := NewClient(types.FeedConfig{})
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	if err := client.ConnectURL(ctx, wsURL); err != nil {
		t.Fatalf("ConnectURL() error = %v", err)
	}
	defer client.Close()

	// Messages arrive asynchronously; poll like the tick driver would.
	var got strings.Builder
	deadline := time.Now().Add(3 * time.Second)
	for got.Len() < len("HELLO WORLD") && time.Now().Before(deadline) {
		got.WriteString(client.Next(got.Len()))
		time.Sleep(10 * time.Millisecond)
	}

	if got.String() != "HELLO WORLD" {
		t.Errorf("received %q, want %q", got.String(), "HELLO WORLD")
	}
}

// TestClientConnectFailure tests that a dead endpoint yields an error
func TestClientConnectFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	client := NewClient(types.FeedConfig{Host: "127.0.0.1", Port: 1})
	if err := client.Connect(ctx); err == nil {
		t.Error("Connect() error = nil, want error")
	}
}
