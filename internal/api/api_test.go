package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/vladimirvolkov/tactics/internal/board"
	"github.com/vladimirvolkov/tactics/internal/frame/frametest"
	"github.com/vladimirvolkov/tactics/internal/store"
)

func newTestServer(t *testing.T, origins ...string) http.Handler {
	t.Helper()
	st, err := store.Open(store.Memory, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	stats := func() any { return map[string]int{"activeRooms": 2} }
	return New(st, zerolog.Nop(), stats).Handler(origins)
}

func do(t *testing.T, h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func tacticBody(t *testing.T, name string) []byte {
	t.Helper()
	b, err := board.New(frametest.New(), board.Boards[0], zerolog.Nop())
	require.NoError(t, err)
	b.PlaceMarker("circle", board.CenterSpot, 4, "#FFFFFF")
	data, err := json.Marshal(b.Tactic(name))
	require.NoError(t, err)
	return data
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ok", gjson.Get(rec.Body.String(), "status").String())
	assert.Equal(t, int64(2), gjson.Get(rec.Body.String(), "stats.activeRooms").Int())
}

func TestFormations(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/formations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, int64(24), gjson.Get(body, "formations.#").Int())
	assert.Equal(t, int64(5), gjson.Get(body, "categories.#").Int())
	assert.Equal(t, "4-4-2", gjson.Get(body, "formations.0").String())
}

func TestFormation(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name   string
		target string
		code   int
		check  func(t *testing.T, body string)
	}{
		{
			name:   "home",
			target: "/api/formations/4-4-2",
			code:   http.StatusOK,
			check: func(t *testing.T, body string) {
				assert.Equal(t, "home", gjson.Get(body, "team").String())
				assert.Equal(t, int64(11), gjson.Get(body, "slots.#").Int())
				assert.Equal(t, 5.0, gjson.Get(body, "slots.0.position.x").Float())
				assert.Equal(t, "3-5-2", gjson.Get(body, "counter").String())
				assert.NotEmpty(t, gjson.Get(body, "insight.summary").String())
			},
		},
		{
			name:   "away is mirrored",
			target: "/api/formations/4-4-2?team=away",
			code:   http.StatusOK,
			check: func(t *testing.T, body string) {
				assert.Equal(t, 95.0, gjson.Get(body, "slots.0.position.x").Float())
			},
		},
		{
			name:   "name with spaces",
			target: "/api/formations/4-3-3%20False%209",
			code:   http.StatusOK,
			check: func(t *testing.T, body string) {
				assert.Equal(t, "4-3-3 False 9", gjson.Get(body, "name").String())
				assert.Equal(t, "4-1-4-1", gjson.Get(body, "counter").String())
			},
		},
		{name: "unknown", target: "/api/formations/1-1-8", code: http.StatusNotFound},
		{name: "bad team", target: "/api/formations/4-4-2?team=referees", code: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, nil)
			require.Equal(t, tt.code, rec.Code, rec.Body.String())
			if tt.check != nil {
				tt.check(t, rec.Body.String())
			} else {
				assert.NotEmpty(t, gjson.Get(rec.Body.String(), "error").String())
			}
		})
	}
}

func TestClubs(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodGet, "/api/clubs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gjson.Get(rec.Body.String(), `leagues.#.teams.#(name=="Chelsea").primaryColor`).Exists())
}

func TestTactics_Lifecycle(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/tactics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tactics":[]}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/tactics?author=coach", tacticBody(t, "Diamond press"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := gjson.Get(rec.Body.String(), "id").String()
	require.NotEmpty(t, id)

	rec = do(t, h, http.MethodGet, "/api/tactics/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, "Diamond press", gjson.Get(body, "name").String())
	assert.Equal(t, "shape", gjson.Get(body, "drawings.0.type").String())
	assert.Equal(t, int64(22), gjson.Get(body, "players.#").Int())

	rec = do(t, h, http.MethodGet, "/api/tactics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "coach", gjson.Get(rec.Body.String(), "tactics.0.author").String())

	rec = do(t, h, http.MethodDelete, "/api/tactics/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/tactics/"+id, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/api/tactics/"+id, nil).Code)
}

func TestSaveTactic_Rejects(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name string
		body []byte
		code int
	}{
		{"broken json", []byte(`{"name":`), http.StatusBadRequest},
		{"unknown drawing", []byte(`{"name":"x","players":[],"drawings":[{"type":"hexagon"}]}`), http.StatusBadRequest},
		{"no name", tacticBody(t, " "), http.StatusBadRequest},
		{"too large", append([]byte(`{"name":"`), append(bytes.Repeat([]byte("a"), maxBody), '"', '}')...), http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/tactics", tt.body)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestServer(t)
	rec := do(t, h, http.MethodPut, "/api/tactics/abc", []byte(`{}`))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORS(t *testing.T) {
	h := newTestServer(t, "https://coach.example.com")

	req := httptest.NewRequest(http.MethodOptions, "/api/tactics", nil)
	req.Header.Set("Origin", "https://coach.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://coach.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://elsewhere.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
