package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/riskibarqy/cricket-tournament/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/cricket-tournament/internal/platform/id"
	"github.com/riskibarqy/cricket-tournament/internal/platform/logging"
	"github.com/riskibarqy/cricket-tournament/internal/platform/metrics"
	"github.com/riskibarqy/cricket-tournament/internal/usecase"
)

type testServer struct {
	router  http.Handler
	metrics *metrics.Service
}

func newTestServer(t *testing.T, seed bool) *testServer {
	t.Helper()

	users := memory.NewUserRepository()
	tournaments := memory.NewTournamentRepository()
	matches := memory.NewMatchRepository()
	if seed {
		users = memory.NewUserRepository(memory.SeedUsers()...)
		tournaments = memory.NewTournamentRepository(memory.SeedTournaments()...)
		matches = memory.NewMatchRepository(memory.SeedMatches()...)
	}

	reg := prometheus.NewRegistry()
	metricSvc := metrics.NewServiceWith(reg, reg)
	logger := logging.NewNop()

	handler := NewHandler(
		usecase.NewUserService(users, idgen.NewUUIDGenerator(), metricSvc, logger),
		usecase.NewTournamentService(tournaments, matches, idgen.NewUUIDGenerator(), logger),
		usecase.NewMatchService(matches, tournaments, idgen.NewUUIDGenerator(), logger),
		usecase.NewDashboardService(users, tournaments, matches),
		"memory",
		logger,
	)
	handler.now = func() time.Time { return time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC) }

	return &testServer{
		router: NewRouter(handler, RouterConfig{
			Logger:             logger,
			SwaggerEnabled:     true,
			CORSAllowedOrigins: []string{"*"},
			Metrics:            metricSvc,
		}),
		metrics: metricSvc,
	}
}

type envelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       map[string]any `json:"data"`
	Error      *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Message  string `json:"message"`
			Location string `json:"location"`
		} `json:"errors"`
	} `json:"error"`
}

type listEnvelope struct {
	Data []map[string]any `json:"data"`
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var out envelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal body %q: %v", rec.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out listEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal list %q: %v", rec.Body.String(), err)
	}
	return out.Data
}

const bowlerRegistration = `{
	"fullName": "Prasad Rao",
	"email": "prasad.rao@example.com",
	"whatsappNumber": "9988776655",
	"state": "Karnataka",
	"district": "Hassan",
	"pincode": "573201",
	"type": "Bowler",
	"bowlerHanded": "Right Handed",
	"bowlerType": "Pace/Fast"
}`

func TestRouter_UserRegistrationFlow(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodPost, "/api/users", bowlerRegistration)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeEnvelope(t, rec)
	userID, _ := created.Data["id"].(string)
	if userID == "" || created.Data["status"] != "Pending" {
		t.Fatalf("unexpected created user: %v", created.Data)
	}

	rec = srv.do(t, http.MethodPut, "/api/users/"+userID, `{"status":"Approved"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on status update, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = srv.do(t, http.MethodGet, "/api/users/"+userID, "")
	if got := decodeEnvelope(t, rec).Data["status"]; got != "Approved" {
		t.Fatalf("expected Approved, got %v", got)
	}

	rec = srv.do(t, http.MethodGet, "/api/users/status/approved", "")
	if items := decodeList(t, rec); len(items) != 1 {
		t.Fatalf("expected one approved user, got %d", len(items))
	}
}

func TestRouter_RegistrationValidationListsFields(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodPost, "/api/register", `{
		"fullName": "A",
		"email": "not-an-email",
		"whatsappNumber": "12345",
		"state": "Karnataka",
		"district": "Hassan",
		"pincode": "573201",
		"type": "All Rounder",
		"batsmanHanded": "Right"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeEnvelope(t, rec)
	got := make(map[string]string, len(body.Error.Errors))
	for _, item := range body.Error.Errors {
		got[item.Location] = item.Message
	}
	want := map[string]string{
		"fullName":       "Full name must be at least 2 characters long",
		"email":          "Please enter a valid email address",
		"whatsappNumber": "WhatsApp number must be a 10-digit number",
		"bowlerHanded":   "Bowler handedness is required for Bowler and All Rounder",
		"bowlerType":     "Bowler type is required for Bowler and All Rounder",
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Fatalf("field %s: got %q want %q (all: %v)", field, got[field], msg, got)
		}
	}

	rec = srv.do(t, http.MethodGet, "/api/users", "")
	if items := decodeList(t, rec); len(items) != 0 {
		t.Fatalf("expected nothing persisted, got %d users", len(items))
	}
}

func TestRouter_DuplicateRegistrationConflicts(t *testing.T) {
	srv := newTestServer(t, false)

	if rec := srv.do(t, http.MethodPost, "/api/users", bowlerRegistration); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	duplicate := strings.Replace(bowlerRegistration, "9988776655", "9000011111", 1)
	rec := srv.do(t, http.MethodPost, "/api/users", duplicate)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := decodeEnvelope(t, rec).Error.Message; msg != "email already exists" {
		t.Fatalf("unexpected conflict message: %q", msg)
	}
}

func TestRouter_RejectsUnknownFields(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodPost, "/api/users", `{"fullName":"Prasad Rao","nickname":"PR"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", rec.Code)
	}
}

func TestRouter_TournamentLifecycle(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodPost, "/api/tournaments", `{
		"title": "Hassan Winter Cup",
		"venue": "District Stadium, Hassan",
		"startDate": "2026-01-10",
		"endDate": "2026-01-20",
		"registrationDeadline": "2026-01-05T18:00:00Z",
		"maxTeams": 8,
		"prizePool": 50000,
		"status": "upcoming",
		"tournamentType": "league",
		"format": "t20"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeEnvelope(t, rec)
	tournamentID, _ := created.Data["id"].(string)
	if created.Data["dateRange"] != "2026-01-10 - 2026-01-20" || created.Data["isRegistrationOpen"] != true {
		t.Fatalf("unexpected derived fields: %v", created.Data)
	}

	rec = srv.do(t, http.MethodGet, "/api/tournaments", "")
	items := decodeList(t, rec)
	if len(items) != 1 || items[0]["id"] != tournamentID {
		t.Fatalf("expected created tournament in list, got %v", items)
	}

	rec = srv.do(t, http.MethodPatch, "/api/tournaments/"+tournamentID+"/status", `{"status":"completed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on status patch, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = srv.do(t, http.MethodGet, "/api/tournaments/"+tournamentID, "")
	if got := decodeEnvelope(t, rec).Data["status"]; got != "completed" {
		t.Fatalf("expected completed, got %v", got)
	}

	if rec = srv.do(t, http.MethodDelete, "/api/tournaments/"+tournamentID, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", rec.Code)
	}
	if rec = srv.do(t, http.MethodGet, "/api/tournaments/"+tournamentID, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestRouter_DeleteTournamentKeepsMatches(t *testing.T) {
	srv := newTestServer(t, true)

	if rec := srv.do(t, http.MethodDelete, "/api/tournaments/"+memory.TournamentIDKarnatakaOpen, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", rec.Code)
	}

	rec := srv.do(t, http.MethodGet, "/api/matches/tournament/"+memory.TournamentIDKarnatakaOpen, "")
	items := decodeList(t, rec)
	if len(items) != 2 {
		t.Fatalf("expected orphaned matches to remain, got %d", len(items))
	}
	if items[0]["teamAScoreFormatted"] != "268/7 (50 ov)" || items[0]["result"] != "Bengaluru Blasters won by 27 runs" {
		t.Fatalf("unexpected derived match fields: %v", items[0])
	}
}

func TestRouter_CreateMatchForUnknownTournament(t *testing.T) {
	srv := newTestServer(t, true)

	rec := srv.do(t, http.MethodPost, "/api/matches", `{
		"tournamentId": "trn-missing",
		"matchNumber": 1,
		"teamA": "Mysuru Warriors",
		"teamB": "Mandya Kings",
		"scheduledDate": "2025-12-01T14:00",
		"venue": "Gangothri Grounds, Mysuru"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := decodeEnvelope(t, rec).Error.Errors[0].Location; loc != "tournamentId" {
		t.Fatalf("unexpected error location: %q", loc)
	}
}

func TestRouter_DashboardStatsAndMetrics(t *testing.T) {
	srv := newTestServer(t, true)

	rec := srv.do(t, http.MethodGet, "/api/dashboard/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	stats := decodeEnvelope(t, rec).Data
	if stats["totalUsers"] != float64(2) || stats["activeTournaments"] != float64(1) || stats["totalMatches"] != float64(2) {
		t.Fatalf("unexpected stats: %v", stats)
	}

	rec = srv.do(t, http.MethodGet, "/metrics", "")
	if !strings.Contains(rec.Body.String(), `route="GET /api/dashboard/stats"`) {
		t.Fatalf("expected route pattern label in metrics output")
	}
}

func TestRouter_UnknownRouteAndSwagger(t *testing.T) {
	srv := newTestServer(t, false)

	if rec := srv.do(t, http.MethodGet, "/api/unknown", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	rec := srv.do(t, http.MethodGet, "/openapi.yaml", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/api/users/{id}/status") {
		t.Fatalf("expected embedded OpenAPI document")
	}
}
