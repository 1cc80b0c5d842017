package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"sab_waitlist/internal/auth"
	"sab_waitlist/internal/exempt"
	"sab_waitlist/internal/metrics"
	"sab_waitlist/internal/models"
	"sab_waitlist/internal/sessions"
	"sab_waitlist/internal/waitlist"
	"sab_waitlist/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-key"

type memoryJournal struct {
	mu      sync.Mutex
	records []models.AuditRecord
}

func (j *memoryJournal) Record(_ context.Context, action, accountID, detail string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = append(j.records, models.AuditRecord{Action: action, AccountID: accountID, Detail: detail})
	return nil
}

func (j *memoryJournal) Recent(_ context.Context, limit int) ([]models.AuditRecord, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := []models.AuditRecord{}
	for i := len(j.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, j.records[i])
	}
	return out, nil
}

func (j *memoryJournal) actions() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []string
	for _, r := range j.records {
		out = append(out, r.Action)
	}
	return out
}

type testServer struct {
	*httptest.Server
	journal *memoryJournal
}

func setupTestServer(t *testing.T, secret string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authorizer, err := auth.NewAuthorizer(secret)
	require.NoError(t, err)

	journal := &memoryJournal{}
	hub := ws.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	h := New(Handler{
		Waitlist: waitlist.NewEngine(),
		Exempt:   exempt.NewRegistry(),
		Players:  sessions.NewDirectory(sessions.DefaultStaleAfter),
		Jobs:     sessions.NewJobStore(),
		Hub:      hub,
		Journal:  journal,
		Metrics:  metrics.New(),
		Auth:     authorizer,
	})
	ts := httptest.NewServer(NewRouter(h, nil))
	t.Cleanup(func() {
		ts.Close()
		cancel()
	})
	return &testServer{Server: ts, journal: journal}
}

func (s *testServer) post(t *testing.T, path string, body interface{}, key string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(http.MethodPost, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(auth.HeaderAPIKey, key)
	}
	return s.do(t, req)
}

func (s *testServer) get(t *testing.T, path string) (int, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, s.URL+path, nil)
	require.NoError(t, err)
	return s.do(t, req)
}

func (s *testServer) do(t *testing.T, req *http.Request) (int, map[string]interface{}) {
	t.Helper()
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return res.StatusCode, body
}

func TestWaitlistFlow(t *testing.T) {
	ts := setupTestServer(t, testKey)

	status, body := ts.post(t, "/waitlist/add", gin.H{"discordId": "u1", "discordUsername": "Alice", "brainrotPaid": 100, "steals": 5}, testKey)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["position"])

	status, body = ts.post(t, "/waitlist/add", gin.H{"discordId": "u2", "discordUsername": "Bob", "brainrotPaid": 50}, testKey)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body["position"])

	// Amount omitted means one steal; Bob has none, so he is removed.
	status, body = ts.post(t, "/waitlist/usesteals", gin.H{"discordId": "u2"}, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["removed"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, float64(0), user["steals"])

	status, body = ts.get(t, "/waitlist/get/u2")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not in waitlist", body["message"])

	status, body = ts.post(t, "/waitlist/addsteals", gin.H{"discordId": "u1", "amount": 3}, testKey)
	require.Equal(t, http.StatusOK, status)
	user = body["user"].(map[string]interface{})
	assert.Equal(t, float64(8), user["steals"])
	assert.Equal(t, float64(1), user["position"])
	assert.Equal(t, float64(100), user["brainrotPaid"])

	status, body = ts.get(t, "/waitlist/list")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["totalCount"])
	assert.Equal(t, float64(0), body["activeCount"])
	assert.Equal(t, float64(1), body["waitingCount"])
	assert.Empty(t, body["active"])

	status, body = ts.post(t, "/waitlist/updateposition", gin.H{"discordId": "u1", "newPosition": 3}, testKey)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["oldPosition"])

	_, body = ts.get(t, "/waitlist/list")
	assert.Equal(t, float64(1), body["activeCount"])
	assert.Equal(t, float64(0), body["waitingCount"])

	status, _ = ts.post(t, "/waitlist/usesteals", gin.H{"discordId": "u1", "amount": 2}, "")
	require.Equal(t, http.StatusOK, status)
	_, body = ts.get(t, "/waitlist/get/u1")
	assert.Equal(t, float64(6), body["user"].(map[string]interface{})["steals"])

	status, body = ts.post(t, "/waitlist/remove", gin.H{"discordId": "u1"}, testKey)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Alice", body["user"].(map[string]interface{})["discordUsername"])

	_, body = ts.get(t, "/waitlist/list")
	assert.Equal(t, float64(0), body["totalCount"])

	assert.Equal(t, []string{
		"waitlist.admit", "waitlist.admit", "waitlist.consume", "waitlist.credit",
		"waitlist.reposition", "waitlist.consume", "waitlist.remove",
	}, ts.journal.actions())
}

func TestAdmitConflictCarriesExistingEntry(t *testing.T) {
	ts := setupTestServer(t, "")

	status, _ := ts.post(t, "/waitlist/add", gin.H{"discordId": "u1", "discordUsername": "Alice", "steals": 2}, "")
	require.Equal(t, http.StatusOK, status)

	status, body := ts.post(t, "/waitlist/add", gin.H{"discordId": "u1", "discordUsername": "Other", "steals": 9}, "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "ALREADY_EXISTS", body["code"])
	assert.Equal(t, "User already in waitlist", body["message"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "Alice", user["discordUsername"])
	assert.Equal(t, float64(2), user["steals"])
}

func TestMutationsRequireKey(t *testing.T) {
	ts := setupTestServer(t, testKey)

	for _, path := range []string{"/waitlist/add", "/waitlist/remove", "/waitlist/addsteals", "/waitlist/updateposition", "/exempt/add", "/exempt/remove"} {
		status, body := ts.post(t, path, gin.H{"discordId": "u1"}, "")
		assert.Equal(t, http.StatusForbidden, status, path)
		assert.Equal(t, "UNAUTHORIZED", body["code"], path)

		status, _ = ts.post(t, path, gin.H{"discordId": "u1"}, "wrong")
		assert.Equal(t, http.StatusForbidden, status, path)
	}

	status, _ := ts.post(t, "/waitlist/add?apiKey="+testKey, gin.H{"discordId": "u1", "discordUsername": "Alice"}, "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = ts.post(t, "/waitlist/addsteals", gin.H{"discordId": "u1", "amount": 1, "apiKey": testKey}, "")
	assert.Equal(t, http.StatusOK, status)

	// Consumption is open to the game server.
	status, _ = ts.post(t, "/waitlist/usesteals", gin.H{"discordId": "u1"}, "")
	assert.Equal(t, http.StatusOK, status)
}

func TestValidationErrors(t *testing.T) {
	ts := setupTestServer(t, "")

	status, body := ts.post(t, "/waitlist/add", gin.H{"discordId": "u1"}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "discordId and discordUsername are required", body["message"])

	status, _ = ts.post(t, "/waitlist/add", gin.H{"discordId": "u1", "discordUsername": "A", "brainrotPaid": -1}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = ts.post(t, "/waitlist/add", "{not json", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = ts.post(t, "/waitlist/add", gin.H{"discordId": "u1", "discordUsername": "A", "steals": 1}, "")
	require.Equal(t, http.StatusOK, status)

	for _, amount := range []interface{}{0, -2, nil} {
		status, _ = ts.post(t, "/waitlist/addsteals", gin.H{"discordId": "u1", "amount": amount}, "")
		assert.Equal(t, http.StatusBadRequest, status, "amount %v", amount)
	}

	status, _ = ts.post(t, "/waitlist/usesteals", gin.H{"discordId": "u1", "amount": -1}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = ts.post(t, "/waitlist/updateposition", gin.H{"discordId": "u1", "newPosition": -1}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "newPosition must be >= 0", body["message"])

	status, _ = ts.post(t, "/waitlist/updateposition", gin.H{"discordId": "u1"}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = ts.post(t, "/waitlist/remove", gin.H{}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "discordId is required", body["message"])

	for _, path := range []string{"/waitlist/usesteals", "/waitlist/addsteals", "/waitlist/updateposition", "/waitlist/remove"} {
		status, body = ts.post(t, path, gin.H{"discordId": "ghost", "amount": 1, "newPosition": 2}, "")
		assert.Equal(t, http.StatusNotFound, status, path)
		assert.Equal(t, "NOT_FOUND", body["code"], path)
	}
}

func TestExemptRoutes(t *testing.T) {
	ts := setupTestServer(t, "")

	status, body := ts.post(t, "/exempt/add", gin.H{"username": "  PlayerOne "}, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "playerone", body["username"])

	status, _ = ts.post(t, "/exempt/add", gin.H{"username": "  "}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	_, body = ts.get(t, "/exempt/check/PLAYERONE")
	assert.Equal(t, true, body["exempt"])
	assert.Equal(t, "playerone", body["username"])

	_, body = ts.get(t, "/checkwhitelist?username=PlayerOne")
	assert.Equal(t, true, body["isWhitelisted"])

	status, _ = ts.get(t, "/checkwhitelist")
	assert.Equal(t, http.StatusBadRequest, status)

	ts.post(t, "/exempt/add", gin.H{"username": "alpha"}, "")
	_, body = ts.get(t, "/exempt/list")
	assert.Equal(t, []interface{}{"alpha", "playerone"}, body["users"])
	assert.Equal(t, float64(2), body["count"])

	_, body = ts.post(t, "/exempt/remove", gin.H{"username": "PlayerOne"}, "")
	assert.Equal(t, true, body["existed"])
	_, body = ts.post(t, "/exempt/remove", gin.H{"username": "PlayerOne"}, "")
	assert.Equal(t, false, body["existed"])

	_, body = ts.get(t, "/exempt/check/playerone")
	assert.Equal(t, false, body["exempt"])
}

func TestJobIDAndPlayers(t *testing.T) {
	ts := setupTestServer(t, "")

	status, _ := ts.get(t, "/getjobid")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = ts.post(t, "/update", gin.H{"username": "x"}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = ts.post(t, "/update", gin.H{"jobId": "job-1", "username": "PlayerOne"}, "")
	require.Equal(t, http.StatusOK, status)

	_, body := ts.get(t, "/getjobid")
	assert.Equal(t, "job-1", body["jobId"])

	status, body = ts.post(t, "/player/join", gin.H{"username": "PlayerOne", "userId": 42}, "")
	require.Equal(t, http.StatusOK, status)
	player := body["player"].(map[string]interface{})
	assert.Equal(t, "PlayerOne", player["displayName"])
	assert.Equal(t, "Unknown", player["device"])
	assert.Equal(t, sessions.AvatarURL(42), player["avatar"])

	status, _ = ts.post(t, "/player/join", gin.H{}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	_, body = ts.get(t, "/players/list")
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, "job-1", body["jobId"])

	_, body = ts.post(t, "/player/leave", gin.H{"username": "PlayerOne"}, "")
	assert.Equal(t, true, body["existed"])
	_, body = ts.post(t, "/player/leave", gin.H{"username": "PlayerOne"}, "")
	assert.Equal(t, false, body["existed"])

	_, body = ts.get(t, "/players/count")
	assert.Equal(t, float64(0), body["count"])
}

func TestHealthStatusAndNoRoute(t *testing.T) {
	ts := setupTestServer(t, testKey)

	status, body := ts.get(t, "/health")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.Nil(t, body["jobId"])
	assert.Equal(t, float64(0), body["waitlistCount"])

	res, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	page, _ := io.ReadAll(res.Body)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(page), "Current JobId: Not set")
	assert.Contains(t, string(page), "API Key: Configured")

	status, body = ts.get(t, "/nope")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Endpoint not found", body["message"])
	assert.Equal(t, "GET /nope", body["details"])
}

func TestAuditAndMetrics(t *testing.T) {
	ts := setupTestServer(t, testKey)

	ts.post(t, "/waitlist/add", gin.H{"discordId": "u1", "discordUsername": "Alice", "steals": 1}, testKey)
	ts.post(t, "/exempt/add", gin.H{"username": "bob"}, testKey)

	status, _ := ts.get(t, "/audit")
	assert.Equal(t, http.StatusForbidden, status)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/audit?limit=1", nil)
	req.Header.Set(auth.HeaderAPIKey, testKey)
	status, body := ts.do(t, req)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])
	records := body["records"].([]interface{})
	assert.Equal(t, "exempt.add", records[0].(map[string]interface{})["action"])

	res, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	raw, _ := io.ReadAll(res.Body)
	res.Body.Close()
	assert.Contains(t, string(raw), `waitlist_operations_total{op="waitlist.admit",result="ok"} 1`)
	assert.Contains(t, string(raw), `waitlist_entries{status="waiting"} 1`)
	assert.Contains(t, string(raw), `exempt_users 1`)
}

func TestWebsocketRelaysEvents(t *testing.T) {
	ts := setupTestServer(t, "")

	status, _ := ts.post(t, "/update", gin.H{"jobId": "job-7"}, "")
	require.Equal(t, http.StatusOK, status)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	var first ws.Event
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "jobid_updated", first.EventType)

	status, _ = ts.post(t, "/waitlist/add", gin.H{"discordId": "u1", "discordUsername": "Alice"}, "")
	require.Equal(t, http.StatusOK, status)

	for {
		var ev ws.Event
		require.NoError(t, conn.ReadJSON(&ev))
		if ev.EventType == "jobid_updated" {
			continue
		}
		assert.Equal(t, "waitlist_admitted", ev.EventType)
		data := ev.Data.(map[string]interface{})
		assert.Equal(t, "u1", data["discordId"])
		break
	}
}

func TestNewDefaultsToOpenMode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(Handler{
		Waitlist: waitlist.NewEngine(),
		Exempt:   exempt.NewRegistry(),
		Players:  sessions.NewDirectory(0),
		Jobs:     sessions.NewJobStore(),
	})
	ts := &testServer{Server: httptest.NewServer(NewRouter(h, nil))}
	t.Cleanup(ts.Close)

	status, _ := ts.post(t, "/waitlist/add", gin.H{"discordId": "u1", "discordUsername": "Alice"}, "")
	assert.Equal(t, http.StatusOK, status)

	res, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	page, _ := io.ReadAll(res.Body)
	res.Body.Close()
	assert.Contains(t, string(page), "API Key: Not Set")
}
