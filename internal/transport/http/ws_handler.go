package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	OptionIndex int `json:"optionIndex"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServePlay upgrades the request and drives one hosted session over the
// socket: a state snapshot after every accepted message, an error envelope
// otherwise. The single read loop is also the only writer, so no write
// pump is needed.
func (h *Handler) ServePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	snap, err := h.service.StartSession(r.Context())
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	sessionID := snap.SessionID
	defer h.service.EndSession(sessionID)

	if err := conn.WriteJSON(outboundMessage[any]{Type: "state", Payload: snap}); err != nil {
		return
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}

		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.sendWSError(conn, "invalid answer payload")
				continue
			}
			snap, err = h.service.SelectOption(sessionID, payload.OptionIndex)
		case "next":
			snap, err = h.service.Advance(sessionID)
		case "restart":
			snap, err = h.service.Restart(r.Context(), sessionID)
		default:
			h.sendWSError(conn, "unsupported message type")
			continue
		}

		if err != nil {
			h.sendWSError(conn, err.Error())
			continue
		}
		if err := conn.WriteJSON(outboundMessage[any]{Type: "state", Payload: snap}); err != nil {
			return
		}
	}
}

func (h *Handler) sendWSError(conn *websocket.Conn, message string) {
	_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: message}})
}
