package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	tests := map[string]bool{
		"/healthz":                    false,
		" /healthz ":                  false,
		"/HEALTH":                     false,
		"/livez":                      false,
		"/readyz":                     false,
		"/metrics":                    false,
		"/":                           true,
		"/api/":                       true,
		"/api/users/":                 true,
		"/api/leaderboard/top_users/": true,
	}

	for path, want := range tests {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q) = %v, want %v", path, got, want)
		}
	}
}
