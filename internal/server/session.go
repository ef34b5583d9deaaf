package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"whist/internal/bots"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Session serves one WebSocket connection. Each request is answered with a
// single server message.
type Session struct {
	mu   sync.Mutex
	id   uuid.UUID
	conn *websocket.Conn
	bot  bots.Bot
	log  *logrus.Entry
}

func NewSession(conn *websocket.Conn, remote string) *Session {
	id := uuid.New()
	return &Session{
		id:   id,
		conn: conn,
		bot:  bots.NewSimple(),
		log:  logrus.WithFields(logrus.Fields{"session": id.String(), "remote": remote}),
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

type ClientMessage struct {
	Type      string           `json:"type"`
	RequestId string           `json:"requestId,omitempty"`
	Choose    *ChooseRequest   `json:"choose,omitempty"`
	Simulate  *SimulateRequest `json:"simulate,omitempty"`
}

type ServerMessage struct {
	Type       string          `json:"type"`
	RequestId  string          `json:"requestId,omitempty"`
	Session    string          `json:"session,omitempty"`
	Choice     *ChooseResponse `json:"choice,omitempty"`
	Simulation *SimulationView `json:"simulation,omitempty"`
	Error      *ErrorView      `json:"error,omitempty"`
}

// HandleConnection reads client messages until the connection fails.
func (s *Session) HandleConnection() {
	s.log.Info("session opened")
	defer s.log.Info("session closed")

	s.send(ServerMessage{Type: "hello", Session: s.id.String()})
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.WithError(err).Warn("read failed")
			}
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.send(ServerMessage{Type: "error", Error: &ErrorView{Code: "bad_request", Message: "invalid json"}})
			continue
		}
		s.send(s.handleMessage(msg))
	}
}

func (s *Session) handleMessage(msg ClientMessage) ServerMessage {
	out := ServerMessage{RequestId: msg.RequestId}
	switch msg.Type {
	case "ping":
		out.Type = "pong"
	case "choose_card":
		if msg.Choose == nil {
			out.Type = "error"
			out.Error = &ErrorView{Code: "bad_request", Message: "choose payload required"}
			return out
		}
		resp, errView := chooseCard(s.bot, *msg.Choose)
		if errView != nil {
			s.log.WithField("code", errView.Code).Debug(errView.Message)
			out.Type = "error"
			out.Error = errView
			return out
		}
		out.Type = "card_chosen"
		out.Choice = resp
	case "simulate":
		if msg.Simulate == nil {
			out.Type = "error"
			out.Error = &ErrorView{Code: "bad_request", Message: "simulate payload required"}
			return out
		}
		opts, view, errView := runSimulation(*msg.Simulate)
		if errView != nil {
			s.log.WithField("code", errView.Code).Error(errView.Message)
			out.Type = "error"
			out.Error = errView
			return out
		}
		s.log.WithFields(logrus.Fields{"deals": view.Deals, "seats": kinds(opts)}).Info("simulation finished")
		out.Type = "simulation"
		out.Simulation = view
	default:
		out.Type = "error"
		out.Error = &ErrorView{Code: "unknown_type", Message: "unknown message type"}
	}
	return out
}

func (s *Session) send(msg ServerMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.WithError(err).Warn("write failed")
	}
}
