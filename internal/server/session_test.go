package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMessageChooseCard(t *testing.T) {
	s := NewSession(nil, "test")
	req := sampleRequest()
	out := s.handleMessage(ClientMessage{Type: "choose_card", RequestId: "r1", Choose: &req})

	require.Nil(t, out.Error)
	assert.Equal(t, "card_chosen", out.Type)
	assert.Equal(t, "r1", out.RequestId)
	require.NotNil(t, out.Choice)
	assert.Equal(t, 2, out.Choice.Player)
	assert.Equal(t, CardDTO{Suit: "S", Rank: "K"}, out.Choice.Card)
	require.Len(t, out.Choice.Events, 2)
	assert.Equal(t, "trick_leader", out.Choice.Events[1].Type)
	assert.Equal(t, EventPayload{Player: 2}, out.Choice.Events[1].Data)
}

func TestHandleMessageErrors(t *testing.T) {
	s := NewSession(nil, "test")

	out := s.handleMessage(ClientMessage{Type: "choose_card"})
	require.NotNil(t, out.Error)
	assert.Equal(t, "bad_request", out.Error.Code)

	bad := sampleRequest()
	bad.Hand = nil
	out = s.handleMessage(ClientMessage{Type: "choose_card", Choose: &bad})
	require.NotNil(t, out.Error)
	assert.Equal(t, "bad_hand", out.Error.Code)

	out = s.handleMessage(ClientMessage{Type: "simulate", Simulate: &SimulateRequest{Seats: []string{"simple"}}})
	require.NotNil(t, out.Error)
	assert.Equal(t, "bad_request", out.Error.Code)

	out = s.handleMessage(ClientMessage{Type: "nope"})
	require.NotNil(t, out.Error)
	assert.Equal(t, "unknown_type", out.Error.Code)

	assert.Equal(t, "pong", s.handleMessage(ClientMessage{Type: "ping"}).Type)
}

func TestHandleMessageSimulate(t *testing.T) {
	s := NewSession(nil, "test")
	out := s.handleMessage(ClientMessage{Type: "simulate", Simulate: &SimulateRequest{Seed: 3, Deals: 4}})
	require.Nil(t, out.Error)
	require.NotNil(t, out.Simulation)
	assert.Equal(t, 4, out.Simulation.Deals)
	assert.Len(t, out.Simulation.Seats, 4)

	total := 0
	for _, seat := range out.Simulation.Seats {
		total += seat.TricksWon
	}
	assert.Equal(t, 4*13, total)
}

func TestWebSocketRoundTrip(t *testing.T) {
	e := echo.New()
	Register(e)
	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var hello ServerMessage
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, "hello", hello.Type)
	assert.NotEmpty(t, hello.Session)

	req := sampleRequest()
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "choose_card", RequestId: "a", Choose: &req}))
	var reply ServerMessage
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "card_chosen", reply.Type)
	require.NotNil(t, reply.Choice)
	assert.Equal(t, CardDTO{Suit: "S", Rank: "K"}, reply.Choice.Card)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{")))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "error", reply.Type)
}
