package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/summitlabs/ascent-backend/internal/apierr"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var env ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("error body is not an envelope: %v (body=%s)", err, rec.Body.String())
	}
	if env.Error.Message == "" {
		t.Fatalf("envelope missing message: body=%s", rec.Body.String())
	}
	return env
}

func TestRespondFromErrorUsesAPIErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		RespondFromError(c, http.StatusInternalServerError, apierr.New(http.StatusConflict, "email_in_use", errors.New("email already registered")))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusConflict {
		t.Fatalf("status: want=%d got=%d", http.StatusConflict, rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error.Code != "email_in_use" {
		t.Fatalf("code: want=%q got=%q", "email_in_use", env.Error.Code)
	}
}

func TestRespondFromErrorFallsBack(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		RespondFromError(c, http.StatusInternalServerError, errors.New("plain failure"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: want=%d got=%d", http.StatusInternalServerError, rec.Code)
	}
	decodeEnvelope(t, rec)
}

// Every route group reports errors in the same envelope, not ad-hoc bodies.
func TestHandlersShareErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	assessment := NewAssessmentHandler(nil)
	profile := NewProfileHandler(nil)

	cases := []struct {
		name       string
		method     string
		path       string
		register   func(r *gin.Engine)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "assessment without identity",
			method:     http.MethodPost,
			path:       "/assessment/complete",
			register:   func(r *gin.Engine) { r.POST("/assessment/complete", assessment.Complete) },
			wantStatus: http.StatusUnauthorized,
			wantCode:   "identity_required",
		},
		{
			name:       "profile bad body",
			method:     http.MethodPut,
			path:       "/profile",
			register:   func(r *gin.Engine) { r.PUT("/profile", profile.UpsertMine) },
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_body",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			tc.register(r)

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status: want=%d got=%d", tc.wantStatus, rec.Code)
			}
			env := decodeEnvelope(t, rec)
			if env.Error.Code != tc.wantCode {
				t.Fatalf("code: want=%q got=%q", tc.wantCode, env.Error.Code)
			}
		})
	}
}
