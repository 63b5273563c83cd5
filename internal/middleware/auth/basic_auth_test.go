package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		configPass string
		user, pass string
		noHeader   bool
		want       int
	}{
		{name: "valid", configPass: "secret", user: "admin", pass: "secret", want: http.StatusNoContent},
		{name: "wrong password", configPass: "secret", user: "admin", pass: "guess", want: http.StatusUnauthorized},
		{name: "wrong user", configPass: "secret", user: "root", pass: "secret", want: http.StatusUnauthorized},
		{name: "no header", configPass: "secret", noHeader: true, want: http.StatusUnauthorized},
		{name: "unconfigured password", configPass: "", user: "admin", pass: "", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/admin/reports/templates/x", nil)
			if !tt.noHeader {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			rr := httptest.NewRecorder()

			BasicAuth("admin", tt.configPass)(ok).ServeHTTP(rr, req)

			assert.Equal(t, tt.want, rr.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Equal(t, `Basic realm="Portal Admin"`, rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
