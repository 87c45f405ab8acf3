package ws

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimirvolkov/tactics/internal/middleware"
)

// echoRooms answers every ping with a pong, the way a room does.
type echoRooms struct {
	hub  *Hub
	fail bool

	mu    sync.Mutex
	conns []*Conn
}

func (e *echoRooms) CreateRoom(c *Conn) error {
	if e.fail {
		return errors.New("no rooms today")
	}
	e.mu.Lock()
	e.conns = append(e.conns, c)
	e.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer cancel()
		defer e.hub.RoomEnded()
		for msg := range c.ReadLoop(ctx) {
			if msg.Type == MsgPing {
				reply, _ := NewMessage(MsgPong, msg.Seq, PongPayload{ClientTime: 7})
				c.Send(reply)
			}
		}
	}()
	return nil
}

func (e *echoRooms) coaches() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []string
	for _, c := range e.conns {
		out = append(out, c.Coach)
	}
	return out
}

func newHubServer(t *testing.T, rooms *echoRooms, opts Options) *httptest.Server {
	t.Helper()
	opts.Log = zerolog.Nop()
	rooms.hub = NewHub(rooms, opts)
	srv := httptest.NewServer(http.HandlerFunc(rooms.hub.HandleWS))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close(websocket.StatusNormalClosure, "") })
	return c
}

func TestHub_PingPong(t *testing.T) {
	rooms := &echoRooms{}
	srv := newHubServer(t, rooms, Options{})
	c := dial(t, wsURL(srv, "?name=Pep"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ping, err := NewMessage(MsgPing, 42, PingPayload{ClientTime: 7})
	require.NoError(t, err)
	data, err := Encode(ping)
	require.NoError(t, err)
	require.NoError(t, c.Write(ctx, websocket.MessageText, data))

	_, reply, err := c.Read(ctx)
	require.NoError(t, err)
	msg, err := Decode(reply)
	require.NoError(t, err)
	assert.Equal(t, MsgPong, msg.Type)
	assert.Equal(t, uint64(42), msg.Seq)

	assert.Equal(t, []string{"Pep"}, rooms.coaches())
	stats := rooms.hub.Stats()
	assert.Equal(t, int64(1), stats.ActiveRooms)
	assert.Equal(t, uint64(1), stats.TotalConnections)
}

func TestHub_RoomEndsOnDisconnect(t *testing.T) {
	rooms := &echoRooms{}
	srv := newHubServer(t, rooms, Options{})
	c := dial(t, wsURL(srv, ""))
	require.Eventually(t, func() bool { return rooms.hub.Stats().ActiveRooms == 1 }, 2*time.Second, 10*time.Millisecond)

	c.Close(websocket.StatusNormalClosure, "bye")
	require.Eventually(t, func() bool {
		s := rooms.hub.Stats()
		return s.ActiveRooms == 0 && s.OpenConnections == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestHub_PerIPConnectionLimit(t *testing.T) {
	limiter := middleware.NewIPRateLimiter(1, 100)
	t.Cleanup(limiter.Close)
	rooms := &echoRooms{}
	srv := newHubServer(t, rooms, Options{Limiter: limiter})

	dial(t, wsURL(srv, ""))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, resp, err := websocket.Dial(ctx, wsURL(srv, ""), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestHub_ServerFull(t *testing.T) {
	rooms := &echoRooms{}
	srv := newHubServer(t, rooms, Options{MaxRooms: 1})
	dial(t, wsURL(srv, ""))
	require.Eventually(t, func() bool { return rooms.hub.Stats().ActiveRooms == 1 }, 2*time.Second, 10*time.Millisecond)

	second := dial(t, wsURL(srv, ""))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _, err := second.Read(ctx)
	assert.Equal(t, websocket.StatusTryAgainLater, websocket.CloseStatus(err))
}

func TestHub_CreateRoomFailure(t *testing.T) {
	rooms := &echoRooms{fail: true}
	srv := newHubServer(t, rooms, Options{})
	c := dial(t, wsURL(srv, ""))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _, err := c.Read(ctx)
	assert.Equal(t, websocket.StatusInternalError, websocket.CloseStatus(err))
	assert.Zero(t, rooms.hub.Stats().ActiveRooms)
}

func TestSanitizeCoach(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Pep", "Pep"},
		{"Jürgen Klopp", "Jürgen Klopp"},
		{"<script>alert(1)</script>", "scriptalert1script"},
		{"x", defaultCoach},
		{"", defaultCoach},
		{"\xff\xfe", defaultCoach},
		{strings.Repeat("a", 40), strings.Repeat("a", maxCoachLen)},
		{"Тренер", "Тренер"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeCoach(tt.in))
		})
	}
}

func TestMessage_RoundTrip(t *testing.T) {
	msg, err := NewMessage(MsgSetFormation, 3, FormationPayload{Team: "away", Formation: "4-4-2"})
	require.NoError(t, err)
	data, err := Encode(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":9,"seq":3,"payload":{"team":"away","formation":"4-4-2"}}`, string(data))

	_, err = Decode([]byte(`{"type":`))
	assert.Error(t, err)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "setFormation", TypeName(MsgSetFormation))
	assert.Equal(t, "state", TypeName(MsgState))
	assert.Equal(t, "unknown(0x7f)", TypeName(0x7F))
}

func TestHub_RateLimitedMessagesAreDropped(t *testing.T) {
	limiter := middleware.NewIPRateLimiter(4, 1)
	t.Cleanup(limiter.Close)
	rooms := &echoRooms{}
	srv := newHubServer(t, rooms, Options{Limiter: limiter})
	c := dial(t, wsURL(srv, ""))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for seq := uint64(1); seq <= 3; seq++ {
		ping, err := NewMessage(MsgPing, seq, PingPayload{})
		require.NoError(t, err)
		data, err := Encode(ping)
		require.NoError(t, err)
		require.NoError(t, c.Write(ctx, websocket.MessageText, data))
	}

	_, reply, err := c.Read(ctx)
	require.NoError(t, err)
	msg, err := Decode(reply)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), msg.Seq)

	short, cancelShort := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancelShort()
	_, _, err = c.Read(short)
	assert.Error(t, err, "later pings were dropped")
}
