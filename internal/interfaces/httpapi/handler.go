package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/octofit-tracker/internal/platform/logging"
	"github.com/riskibarqy/octofit-tracker/internal/usecase"
)

type Handler struct {
	userService        *usecase.UserService
	teamService        *usecase.TeamService
	activityService    *usecase.ActivityService
	leaderboardService *usecase.LeaderboardService
	workoutService     *usecase.WorkoutService
	publicBaseURL      string
	logger             *logging.Logger
	validator          *validator.Validate
}

type HandlerServices struct {
	Users       *usecase.UserService
	Teams       *usecase.TeamService
	Activities  *usecase.ActivityService
	Leaderboard *usecase.LeaderboardService
	Workouts    *usecase.WorkoutService
}

// NewHandler builds the API handler. publicBaseURL prefixes the collection URLs of
// the discovery document; when empty the request host is used.
func NewHandler(services HandlerServices, publicBaseURL string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		userService:        services.Users,
		teamService:        services.Teams,
		activityService:    services.Activities,
		leaderboardService: services.Leaderboard,
		workoutService:     services.Workouts,
		publicBaseURL:      strings.TrimRight(strings.TrimSpace(publicBaseURL), "/"),
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Discovery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Discovery")
	defer span.End()

	base := h.baseURL(r)
	writeSuccess(ctx, w, http.StatusOK, discoveryDTO{
		Message: "Welcome to OctoFit Tracker API",
		BaseURL: base,
		Endpoints: discoveryEndpointsDTO{
			Users:       base + "/api/users/",
			Teams:       base + "/api/teams/",
			Activities:  base + "/api/activities/",
			Leaderboard: base + "/api/leaderboard/",
			Workouts:    base + "/api/workouts/",
		},
	})
}

func (h *Handler) baseURL(r *http.Request) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		scheme = strings.ToLower(strings.Split(proto, ",")[0])
	}

	return scheme + "://" + r.Host
}
