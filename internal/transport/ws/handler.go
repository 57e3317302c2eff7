package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"judgesim/internal/model"
	"judgesim/internal/service"
	"judgesim/internal/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// Handler handles voice interview WebSocket connections
type Handler struct {
	hub        *Hub
	authSvc    *service.AuthService
	sessionSvc *service.SessionService
	judgeSvc   *service.JudgeService
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, authSvc *service.AuthService, sessionSvc *service.SessionService, judgeSvc *service.JudgeService) *Handler {
	return &Handler{
		hub:        hub,
		authSvc:    authSvc,
		sessionSvc: sessionSvc,
		judgeSvc:   judgeSvc,
	}
}

type transcriptPayload struct {
	Text string `json:"text"`
}

type questionPayload struct {
	Question string `json:"question"`
	Exchange int    `json:"exchange"`
}

type statePayload struct {
	Phase string `json:"phase"`
}

// VoiceWS handles GET /v1/ws/sessions/{id}/voice
func (h *Handler) VoiceWS(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	token := r.URL.Query().Get("token")

	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}
	claims, err := h.authSvc.ValidateToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	iv, err := h.sessionSvc.Manager().Get(id)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	state := iv.State()
	if state.Stage != model.StageVoiceInterview {
		http.Error(w, "session is not in a voice interview", http.StatusConflict)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	conn := &Connection{
		SessionID: id,
		UserID:    claims.UID,
		Send:      make(chan []byte, 256),
		Hub:       h.hub,
	}
	h.hub.Register(conn)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn, state)
}

// readPump drives the interview: each transcript from the client produces
// the judge's next question until the exchange cap or a closing reply.
func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection, state *model.SessionState) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	lastQuestion := h.askNext(conn, state)

	for {
		_, raw, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.hub.SendToSession(conn.SessionID, MsgError, map[string]string{"error": "invalid message"})
			continue
		}

		switch msg.Type {
		case MsgTranscript:
			var payload transcriptPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.Text == "" {
				h.hub.SendToSession(conn.SessionID, MsgError, map[string]string{"error": "empty transcript"})
				continue
			}

			h.hub.SendToSession(conn.SessionID, MsgVoiceState, statePayload{Phase: session.VoiceProcessing})
			done, err := h.sessionSvc.Manager().RecordExchange(conn.SessionID, lastQuestion, payload.Text)
			if err != nil {
				h.hub.SendToSession(conn.SessionID, MsgError, map[string]string{"error": err.Error()})
				return
			}
			if done {
				h.complete(conn)
				return
			}
			lastQuestion = h.askNext(conn, state)

		case MsgEnd:
			h.complete(conn)
			return
		}
	}
}

// askNext generates the judge's next question from the conversation so far
// and pushes it to the client
func (h *Handler) askNext(conn *Connection, state *model.SessionState) string {
	h.hub.SendToSession(conn.SessionID, MsgVoiceState, statePayload{Phase: session.VoiceProcessing})

	history, err := h.sessionSvc.Manager().VoiceHistory(conn.SessionID)
	if err != nil {
		h.hub.SendToSession(conn.SessionID, MsgError, map[string]string{"error": err.Error()})
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	question := h.judgeSvc.GenerateQuestion(ctx, &model.GenerateQuestionRequest{
		Award:               state.Award,
		Difficulty:          state.Difficulty,
		Mode:                state.JudgeStyle,
		ConversationHistory: history,
	})

	h.hub.SendToSession(conn.SessionID, MsgVoiceState, statePayload{Phase: session.VoiceSpeaking})
	h.hub.SendToSession(conn.SessionID, MsgJudgeQuestion, questionPayload{
		Question: question,
		Exchange: len(history) / 2,
	})
	h.hub.SendToSession(conn.SessionID, MsgVoiceState, statePayload{Phase: session.VoiceListening})
	return question
}

// complete finishes the session and pushes the scored report
func (h *Handler) complete(conn *Connection) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	state, err := h.sessionSvc.Finish(ctx, conn.SessionID)
	if err != nil {
		h.hub.SendToSession(conn.SessionID, MsgError, map[string]string{"error": err.Error()})
		return
	}
	h.hub.SendToSession(conn.SessionID, MsgInterviewComplete, state)
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
