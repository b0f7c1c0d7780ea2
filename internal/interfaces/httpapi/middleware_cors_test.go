package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantCode    int
		wantOrigin  string
		wantVary    bool
		wantMethods bool
	}{
		{
			name:        "configured origin is echoed",
			allowed:     []string{"https://octofit.example.com"},
			method:      http.MethodGet,
			origin:      "https://octofit.example.com",
			wantCode:    http.StatusOK,
			wantOrigin:  "https://octofit.example.com",
			wantVary:    true,
			wantMethods: true,
		},
		{
			name:        "wildcard preflight",
			allowed:     []string{"*"},
			method:      http.MethodOptions,
			origin:      "https://octofit.example.com",
			wantCode:    http.StatusNoContent,
			wantOrigin:  "*",
			wantMethods: true,
		},
		{
			name:     "unconfigured origin gets no headers",
			allowed:  []string{"https://allowed.example.com"},
			method:   http.MethodGet,
			origin:   "https://not-allowed.example.com",
			wantCode: http.StatusOK,
		},
		{
			name:     "request without origin passes through",
			allowed:  []string{"*"},
			method:   http.MethodPost,
			wantCode: http.StatusOK,
		},
		{
			name:     "blank entries are ignored",
			allowed:  []string{" ", ""},
			method:   http.MethodGet,
			origin:   "https://octofit.example.com",
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := CORS(tt.allowed, next)

			req := httptest.NewRequest(tt.method, "/api/users/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
			}
			if got := rec.Header().Get("Vary") == "Origin"; got != tt.wantVary {
				t.Fatalf("unexpected Vary header: %q", rec.Header().Get("Vary"))
			}
			if got := rec.Header().Get("Access-Control-Allow-Methods") != ""; got != tt.wantMethods {
				t.Fatalf("unexpected Access-Control-Allow-Methods: %q", rec.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}
