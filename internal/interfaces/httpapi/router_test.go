package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/octofit-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/octofit-tracker/internal/platform/logging"
	"github.com/riskibarqy/octofit-tracker/internal/platform/password"
	"github.com/riskibarqy/octofit-tracker/internal/usecase"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(t *testing.T, publicBaseURL string, opts RouterOptions) http.Handler {
	t.Helper()

	store := memory.NewStore(nil)
	logger := logging.NewNop()
	hasher := password.NewBcryptHasher(bcrypt.MinCost)
	handler := NewHandler(HandlerServices{
		Users:       usecase.NewUserService(store.Users, hasher, logger),
		Teams:       usecase.NewTeamService(store.Teams, logger),
		Activities:  usecase.NewActivityService(store.Activities, logger),
		Leaderboard: usecase.NewLeaderboardService(store.Leaderboard, store.Activities, store.Users, nil, logger),
		Workouts:    usecase.NewWorkoutService(store.Workouts, logger),
	}, publicBaseURL, logger)

	opts.Logger = logger
	return NewRouter(handler, opts)
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("unmarshal %s %s response: %v", method, path, err)
		}
	}
	return rec.Code, out
}

func dataObject(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %#v", body)
	}
	return data
}

func dataList(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()
	raw, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data list, got %#v", body)
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			t.Fatalf("expected object items, got %#v", item)
		}
		out = append(out, obj)
	}
	return out
}

func mustCreate(t *testing.T, h http.Handler, path, body string) map[string]any {
	t.Helper()
	status, out := doRequest(t, h, http.MethodPost, path, body)
	if status != http.StatusCreated {
		t.Fatalf("POST %s: expected 201, got %d: %#v", path, status, out)
	}
	return dataObject(t, out)
}

func TestRouter_Discovery(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "https://octofit.example.com/", RouterOptions{})
	for _, path := range []string{"/", "/api/", "/api"} {
		status, body := doRequest(t, router, http.MethodGet, path, "")
		if status != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, status)
		}
		data := dataObject(t, body)
		if data["message"] != "Welcome to OctoFit Tracker API" {
			t.Fatalf("unexpected message: %v", data["message"])
		}
		endpoints, _ := data["endpoints"].(map[string]any)
		if got := endpoints["leaderboard"]; got != "https://octofit.example.com/api/leaderboard/" {
			t.Fatalf("unexpected leaderboard url: %v", got)
		}
	}
}

func TestRouter_DiscoveryFallsBackToRequestHost(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "", RouterOptions{})
	_, body := doRequest(t, router, http.MethodGet, "/", "")
	data := dataObject(t, body)
	if data["base_url"] != "http://example.com" {
		t.Fatalf("unexpected base url: %v", data["base_url"])
	}
	endpoints, _ := data["endpoints"].(map[string]any)
	if got := endpoints["users"]; got != "http://example.com/api/users/" {
		t.Fatalf("unexpected users url: %v", got)
	}
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "", RouterOptions{})
	status, body := doRequest(t, router, http.MethodGet, "/healthz", "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if got := dataObject(t, body)["status"]; got != "ok" {
		t.Fatalf("unexpected status: %v", got)
	}
}

func TestRouter_UserLifecycle(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "", RouterOptions{})
	created := mustCreate(t, router, "/api/users/", `{"email":"tony@stark.com","username":"iron_man","password":"jarvis","full_name":"Tony Stark","team":"Team Marvel"}`)

	userID, _ := created["id"].(string)
	if userID == "" {
		t.Fatalf("expected string id, got %#v", created["id"])
	}
	if _, ok := created["password"]; ok {
		t.Fatalf("password must not be serialized")
	}
	if created["team"] != "Team Marvel" {
		t.Fatalf("unexpected team: %v", created["team"])
	}

	status, _ := doRequest(t, router, http.MethodPost, "/api/users", `{"email":"tony@stark.com","username":"tony","password":"x","full_name":"Tony"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("duplicate email: expected 400, got %d", status)
	}

	for _, path := range []string{"/api/users/" + userID + "/", "/api/users/" + userID} {
		status, body := doRequest(t, router, http.MethodGet, path, "")
		if status != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, status)
		}
		if got := dataObject(t, body)["username"]; got != "iron_man" {
			t.Fatalf("unexpected username: %v", got)
		}
	}

	status, body := doRequest(t, router, http.MethodPut, "/api/users/"+userID+"/", `{"email":"tony@stark.com","username":"iron_man","password":"friday","full_name":"Anthony Stark","team":"Team Marvel"}`)
	if status != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %#v", status, body)
	}
	if got := dataObject(t, body)["full_name"]; got != "Anthony Stark" {
		t.Fatalf("unexpected full_name: %v", got)
	}

	status, body = doRequest(t, router, http.MethodDelete, "/api/users/"+userID+"/", "")
	if status != http.StatusOK || dataObject(t, body)["deleted"] != true {
		t.Fatalf("delete: unexpected response %d %#v", status, body)
	}

	status, _ = doRequest(t, router, http.MethodGet, "/api/users/"+userID+"/", "")
	if status != http.StatusNotFound {
		t.Fatalf("get deleted: expected 404, got %d", status)
	}
}

func TestRouter_RejectsMalformedPayloads(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "", RouterOptions{})
	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "unknown field", path: "/api/users/", body: `{"email":"a@b.com","username":"a","password":"p","full_name":"A","is_admin":true}`},
		{name: "missing required", path: "/api/users/", body: `{"email":"a@b.com","password":"p","full_name":"A"}`},
		{name: "invalid email", path: "/api/users/", body: `{"email":"nope","username":"a","password":"p","full_name":"A"}`},
		{name: "empty body", path: "/api/teams/", body: ""},
		{name: "duplicate members", path: "/api/teams/", body: `{"name":"T","captain":"c","members":["x","x"]}`},
		{name: "zero duration", path: "/api/workouts/", body: `{"name":"W","description":"d","difficulty":"Beginner","duration":0,"category":"Cardio"}`},
		{name: "missing date", path: "/api/activities/", body: `{"user":"a","activity_type":"Yoga","duration":30}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, router, http.MethodPost, tt.path, tt.body)
			if status != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %#v", status, body)
			}
			errorObj, _ := body["error"].(map[string]any)
			if errorObj["status"] != "INVALID_ARGUMENT" {
				t.Fatalf("unexpected error status: %#v", errorObj)
			}
		})
	}
}

func TestRouter_FieldLengthLimits(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "", RouterOptions{})
	workoutBody := func(category, recommendedFor string) string {
		return `{"name":"W","description":"d","difficulty":"Beginner","duration":20,"category":"` + category + `","recommended_for":"` + recommendedFor + `"}`
	}
	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{name: "team name 200", path: "/api/teams/", body: `{"name":"` + strings.Repeat("t", 200) + `","captain":"batman"}`, want: http.StatusCreated},
		{name: "team name 256", path: "/api/teams/", body: `{"name":"` + strings.Repeat("u", 256) + `","captain":"batman"}`, want: http.StatusBadRequest},
		{name: "team captain 151", path: "/api/teams/", body: `{"name":"Team C","captain":"` + strings.Repeat("c", 151) + `"}`, want: http.StatusBadRequest},
		{name: "workout category 100", path: "/api/workouts/", body: workoutBody(strings.Repeat("c", 100), ""), want: http.StatusCreated},
		{name: "workout category 101", path: "/api/workouts/", body: workoutBody(strings.Repeat("c", 101), ""), want: http.StatusBadRequest},
		{name: "workout recommended_for 100", path: "/api/workouts/", body: workoutBody("Cardio", strings.Repeat("r", 100)), want: http.StatusCreated},
		{name: "workout recommended_for 101", path: "/api/workouts/", body: workoutBody("Cardio", strings.Repeat("r", 101)), want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, router, http.MethodPost, tt.path, tt.body)
			if status != tt.want {
				t.Fatalf("expected %d, got %d: %#v", tt.want, status, body)
			}
		})
	}
}

func TestRouter_FiltersRequireParameter(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "", RouterOptions{})
	paths := []string{
		"/api/users/by_team/",
		"/api/activities/by_user/",
		"/api/activities/by_type/",
		"/api/activities/by_type/?type=",
		"/api/leaderboard/by_team/",
		"/api/workouts/by_difficulty/",
		"/api/workouts/by_category",
	}
	for _, path := range paths {
		status, _ := doRequest(t, router, http.MethodGet, path, "")
		if status != http.StatusBadRequest {
			t.Fatalf("GET %s: expected 400, got %d", path, status)
		}
	}
}

func TestRouter_TeamMembers(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "", RouterOptions{})
	created := mustCreate(t, router, "/api/teams/", `{"name":"Team Marvel","description":"Avengers","captain":"iron_man","members":["iron_man"]}`)
	teamID := created["id"].(string)
	addPath := "/api/teams/" + teamID + "/add_member/"
	removePath := "/api/teams/" + teamID + "/remove_member/"

	status, body := doRequest(t, router, http.MethodPost, addPath, `{"username":"hulk"}`)
	if status != http.StatusOK {
		t.Fatalf("add member: expected 200, got %d: %#v", status, body)
	}
	data := dataObject(t, body)
	if data["status"] != "member added" {
		t.Fatalf("unexpected status: %v", data["status"])
	}
	members, _ := data["team"].(map[string]any)["members"].([]any)
	if len(members) != 2 || members[1] != "hulk" {
		t.Fatalf("unexpected members: %#v", members)
	}

	status, _ = doRequest(t, router, http.MethodPost, addPath, `{"username":"hulk"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("duplicate add: expected 400, got %d", status)
	}
	status, _ = doRequest(t, router, http.MethodPost, removePath, `{"username":"thor"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("remove non-member: expected 400, got %d", status)
	}
	status, _ = doRequest(t, router, http.MethodPost, addPath, `{}`)
	if status != http.StatusBadRequest {
		t.Fatalf("missing username: expected 400, got %d", status)
	}
	status, _ = doRequest(t, router, http.MethodPost, "/api/teams/missing/add_member/", `{"username":"hulk"}`)
	if status != http.StatusNotFound {
		t.Fatalf("unknown team: expected 404, got %d", status)
	}

	status, body = doRequest(t, router, http.MethodPost, strings.TrimSuffix(removePath, "/"), `{"username":"hulk"}`)
	if status != http.StatusOK {
		t.Fatalf("remove member: expected 200, got %d", status)
	}
	data = dataObject(t, body)
	if data["status"] != "member removed" {
		t.Fatalf("unexpected status: %v", data["status"])
	}

	_, body = doRequest(t, router, http.MethodGet, "/api/teams/"+teamID+"/", "")
	members, _ = dataObject(t, body)["members"].([]any)
	if len(members) != 1 || members[0] != "iron_man" {
		t.Fatalf("unexpected persisted members: %#v", members)
	}
}

func TestRouter_LeaderboardRecomputeAndQueries(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "", RouterOptions{})
	mustCreate(t, router, "/api/users/", `{"email":"a@example.com","username":"a","password":"pw","full_name":"Alpha","team":"Team Marvel"}`)
	mustCreate(t, router, "/api/users/", `{"email":"b@example.com","username":"b","password":"pw","full_name":"Bravo","team":"Team DC"}`)
	mustCreate(t, router, "/api/activities/", `{"user":"a","activity_type":"Running","duration":10,"points":10,"date":"2026-10-01T10:00:00Z"}`)
	mustCreate(t, router, "/api/activities/", `{"user":"b","activity_type":"Yoga","duration":20,"points":20,"date":"2026-10-02T10:00:00Z"}`)
	mustCreate(t, router, "/api/activities/", `{"user":"a","activity_type":"Running","duration":5,"distance":1.5,"points":5,"date":"2026-10-03T10:00:00Z"}`)

	status, body := doRequest(t, router, http.MethodPost, "/api/leaderboard/recompute/", "")
	if status != http.StatusOK {
		t.Fatalf("recompute: expected 200, got %d: %#v", status, body)
	}
	entries := dataList(t, body)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0]["user"] != "b" || entries[0]["rank"] != float64(1) || entries[0]["total_points"] != float64(20) {
		t.Fatalf("unexpected first entry: %#v", entries[0])
	}
	if entries[1]["user"] != "a" || entries[1]["rank"] != float64(2) || entries[1]["total_activities"] != float64(2) {
		t.Fatalf("unexpected second entry: %#v", entries[1])
	}

	_, body = doRequest(t, router, http.MethodGet, "/api/leaderboard/top_users/?limit=1", "")
	top := dataList(t, body)
	if len(top) != 1 || top[0]["user"] != "b" {
		t.Fatalf("unexpected top users: %#v", top)
	}

	_, body = doRequest(t, router, http.MethodGet, "/api/leaderboard/top_users/", "")
	if got := len(dataList(t, body)); got != 2 {
		t.Fatalf("default limit: expected 2 entries, got %d", got)
	}

	for _, limit := range []string{"0", "-1", "abc"} {
		status, _ := doRequest(t, router, http.MethodGet, "/api/leaderboard/top_users/?limit="+limit, "")
		if status != http.StatusBadRequest {
			t.Fatalf("limit=%s: expected 400, got %d", limit, status)
		}
	}

	_, body = doRequest(t, router, http.MethodGet, "/api/leaderboard/by_team/?team=Team+DC", "")
	byTeam := dataList(t, body)
	if len(byTeam) != 1 || byTeam[0]["user"] != "b" {
		t.Fatalf("unexpected team entries: %#v", byTeam)
	}

	_, body = doRequest(t, router, http.MethodGet, "/api/activities/by_user/?user=a", "")
	byUser := dataList(t, body)
	if len(byUser) != 2 || byUser[0]["date"] != "2026-10-03T10:00:00Z" {
		t.Fatalf("unexpected activities for a: %#v", byUser)
	}

	_, body = doRequest(t, router, http.MethodGet, "/api/activities/by_type/?type=Running", "")
	if got := len(dataList(t, body)); got != 2 {
		t.Fatalf("expected 2 running activities, got %d", got)
	}
}

func TestRouter_WorkoutOrderingAndFilters(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, "", RouterOptions{})
	mustCreate(t, router, "/api/workouts/", `{"name":"Morning Run","description":"Easy jog","difficulty":"Beginner","duration":30,"category":"Cardio","exercises":["Warm-up","Jog"]}`)
	mustCreate(t, router, "/api/workouts/", `{"name":"HIIT Blast","description":"Intervals","difficulty":"Advanced","duration":25,"category":"Cardio"}`)
	mustCreate(t, router, "/api/workouts/", `{"name":"Core Basics","description":"Planks","difficulty":"Beginner","duration":20,"category":"Strength"}`)

	_, body := doRequest(t, router, http.MethodGet, "/api/workouts/", "")
	items := dataList(t, body)
	var names []string
	for _, item := range items {
		names = append(names, item["name"].(string))
	}
	if strings.Join(names, ",") != "HIIT Blast,Core Basics,Morning Run" {
		t.Fatalf("unexpected order: %v", names)
	}
	if exercises, _ := items[1]["exercises"].([]any); exercises == nil || len(exercises) != 0 {
		t.Fatalf("expected empty exercises list, got %#v", items[1]["exercises"])
	}

	_, body = doRequest(t, router, http.MethodGet, "/api/workouts/by_difficulty/?difficulty=Beginner", "")
	if got := len(dataList(t, body)); got != 2 {
		t.Fatalf("expected 2 beginner workouts, got %d", got)
	}
	_, body = doRequest(t, router, http.MethodGet, "/api/workouts/by_category/?category=Strength", "")
	if got := dataList(t, body); len(got) != 1 || got[0]["name"] != "Core Basics" {
		t.Fatalf("unexpected strength workouts: %#v", got)
	}
}

type recordedRequest struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (o *recordingObserver) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.requests = append(o.requests, recordedRequest{method: method, route: route, status: status})
}

func TestRouter_RequestMetricsUseRoutePattern(t *testing.T) {
	t.Parallel()

	observer := &recordingObserver{}
	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics\n"))
	})
	router := newTestRouter(t, "", RouterOptions{RequestObserver: observer, MetricsHandler: metricsHandler})

	doRequest(t, router, http.MethodGet, "/api/users/42/", "")
	doRequest(t, router, http.MethodGet, "/nope", "")
	status, _ := doRequest(t, router, http.MethodGet, "/metrics", "")
	if status != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", status)
	}

	want := []recordedRequest{
		{method: http.MethodGet, route: "GET /api/users/{id}/{$}", status: http.StatusNotFound},
		{method: http.MethodGet, route: "unmatched", status: http.StatusNotFound},
		{method: http.MethodGet, route: "GET /metrics", status: http.StatusOK},
	}
	if len(observer.requests) != len(want) {
		t.Fatalf("expected %d observations, got %#v", len(want), observer.requests)
	}
	for i := range want {
		if observer.requests[i] != want[i] {
			t.Fatalf("observation %d: want %#v got %#v", i, want[i], observer.requests[i])
		}
	}
}

func TestRecoverPanic(t *testing.T) {
	t.Parallel()

	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"INTERNAL"`) {
		t.Fatalf("expected INTERNAL status in body, got %s", rec.Body.String())
	}
}
