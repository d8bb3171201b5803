package http

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"hanzi-quiz-service/internal/domain"
)

func TestWebSocketPlayFlow(t *testing.T) {
	server := newTestServer(t, 15, nil)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws/play"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Initial state lands first.
	snap := readState(conn, t)
	if snap.Phase != domain.PhasePlaying || snap.QuestionNumber != 1 {
		t.Fatalf("expected fresh playing state, got %+v", snap)
	}
	for _, opt := range snap.Options {
		if opt.Correct {
			t.Fatalf("answer leaked before selection: %+v", opt)
		}
	}

	// Answer, expect the lock to engage and the reveal to appear.
	writeMsg(conn, t, map[string]any{"type": "answer", "payload": map[string]any{"optionIndex": 2}})
	snap = readState(conn, t)
	if !snap.Answered {
		t.Fatalf("expected answered state, got %+v", snap)
	}
	revealed := false
	for _, opt := range snap.Options {
		if opt.Correct {
			revealed = true
		}
	}
	if !revealed {
		t.Fatalf("expected correct option revealed after answering")
	}

	// Advance to the next question.
	writeMsg(conn, t, map[string]any{"type": "next"})
	snap = readState(conn, t)
	if snap.QuestionNumber != 2 || snap.Answered {
		t.Fatalf("expected clean second question, got %+v", snap)
	}

	// Unknown message types produce an error envelope, not a dropped socket.
	writeMsg(conn, t, map[string]any{"type": "bogus"})
	typ, _ := readNext(conn, t)
	if typ != "error" {
		t.Fatalf("expected error envelope, got %s", typ)
	}

	// Restart resets progress over a fresh draw.
	writeMsg(conn, t, map[string]any{"type": "restart"})
	snap = readState(conn, t)
	if snap.QuestionNumber != 1 || snap.Score != 0 {
		t.Fatalf("expected reset state, got %+v", snap)
	}
}

func writeMsg(conn *websocket.Conn, t *testing.T, msg map[string]any) {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func readNext(conn *websocket.Conn, t *testing.T) (string, json.RawMessage) {
	t.Helper()
	var msg struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	return msg.Type, msg.Payload
}

func readState(conn *websocket.Conn, t *testing.T) domain.GameSnapshot {
	t.Helper()
	typ, payload := readNext(conn, t)
	if typ != "state" {
		t.Fatalf("expected state message, got %s", typ)
	}
	var snap domain.GameSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	return snap
}
