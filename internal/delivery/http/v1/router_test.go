package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobforge-backend/config"
	v1 "jobforge-backend/internal/delivery/http/v1"
	"jobforge-backend/internal/domain"
	"jobforge-backend/pkg/apperror"
	"jobforge-backend/pkg/token"
)

type stubAuthUsecase struct {
	issuer *token.Issuer
	user   *domain.User
}

func (s *stubAuthUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	return s.user, nil
}

func (s *stubAuthUsecase) Login(ctx context.Context, email, password string) (token.Pair, error) {
	if email != s.user.Email || password != "Sup3rSecret" {
		return token.Pair{}, apperror.Unauthorized("Incorrect email or password")
	}
	return s.issuer.IssuePair(s.user.ID, s.user.Email)
}

func (s *stubAuthUsecase) Refresh(ctx context.Context, refreshToken string) (token.Pair, error) {
	claims, err := s.issuer.Verify(refreshToken, token.KindRefresh)
	if err != nil {
		return token.Pair{}, apperror.Unauthorized("Invalid refresh token")
	}
	return s.issuer.IssuePair(claims.Subject, claims.Email)
}

func (s *stubAuthUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	if id != s.user.ID {
		return nil, apperror.NotFound("User not found")
	}
	return s.user, nil
}

func (s *stubAuthUsecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	return nil
}

type stubApplicationUsecase struct {
	lastStatus string
}

func (s *stubApplicationUsecase) List(ctx context.Context, userID string, limit, offset int) ([]domain.Application, error) {
	return []domain.Application{}, nil
}

func (s *stubApplicationUsecase) Get(ctx context.Context, userID, id string) (*domain.Application, error) {
	return nil, apperror.NotFound("Application not found")
}

func (s *stubApplicationUsecase) Create(ctx context.Context, app *domain.Application) error {
	app.ID = "app-1"
	if app.Status == "" {
		app.Status = domain.StatusDraft
	}
	return nil
}

func (s *stubApplicationUsecase) Update(ctx context.Context, userID, id string, update *domain.ApplicationUpdate) (*domain.Application, error) {
	return nil, apperror.NotFound("Application not found")
}

func (s *stubApplicationUsecase) Delete(ctx context.Context, userID, id string) error {
	return nil
}

func (s *stubApplicationUsecase) UpdateStatus(ctx context.Context, userID, id, status string) (*domain.Application, error) {
	if !domain.IsValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Invalid application status: " + status)
	}
	s.lastStatus = status
	return &domain.Application{ID: id, UserID: userID, Status: status}, nil
}

func (s *stubApplicationUsecase) Stats(ctx context.Context, userID string) (*domain.ApplicationStats, error) {
	byStatus := make(map[string]int64, len(domain.ApplicationStatuses))
	for _, st := range domain.ApplicationStatuses {
		byStatus[st] = 0
	}
	byStatus[domain.StatusApplied] = 1
	return &domain.ApplicationStats{Total: 1, ByStatus: byStatus}, nil
}

func testRouter(t *testing.T) (*gin.Engine, *stubAuthUsecase, *stubApplicationUsecase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer := token.NewIssuer("test-secret", 30*time.Minute, 7*24*time.Hour)
	authUC := &stubAuthUsecase{
		issuer: issuer,
		user: &domain.User{
			ID:       "user-1",
			Email:    "dev@example.com",
			FullName: "Dev User",
			IsActive: true,
		},
	}
	appUC := &stubApplicationUsecase{}

	cfg := &config.Config{
		CORSOrigins:              []string{"http://localhost:3000"},
		RateLimitWindowSeconds:   60,
		RateLimitLoginThreshold:  100,
		RateLimitGlobalThreshold: 1000,
	}

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ApplicationUC: appUC,
		TokenIssuer:   issuer,
		Config:        cfg,
	})
	return router, authUC, appUC
}

func doJSON(router *gin.Engine, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	router, _, _ := testRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := envelope(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["request_id"])
}

func TestAuthFlow(t *testing.T) {
	router, _, appUC := testRouter(t)

	t.Run("register returns 201", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
			"email":     "dev@example.com",
			"password":  "Sup3rSecret",
			"full_name": "Dev User",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("register with malformed body returns 422", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := envelope(t, w)
		assert.Equal(t, false, body["success"])
	})

	t.Run("login then use access token", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"email":    "dev@example.com",
			"password": "Sup3rSecret",
		})
		require.Equal(t, http.StatusOK, w.Code)

		body := envelope(t, w)
		data := body["data"].(map[string]interface{})
		access := data["access_token"].(string)
		refresh := data["refresh_token"].(string)
		require.NotEmpty(t, access)

		me := doJSON(router, http.MethodGet, "/api/v1/auth/me", access, nil)
		assert.Equal(t, http.StatusOK, me.Code)
		meBody := envelope(t, me)
		meData := meBody["data"].(map[string]interface{})
		assert.Equal(t, "dev@example.com", meData["email"])

		// A refresh token must not pass as an access token.
		confused := doJSON(router, http.MethodGet, "/api/v1/auth/me", refresh, nil)
		assert.Equal(t, http.StatusUnauthorized, confused.Code)

		t.Run("status patch round trip", func(t *testing.T) {
			patch := doJSON(router, http.MethodPatch, "/api/v1/applications/app-1/status", access, gin.H{
				"status": "interview",
			})
			assert.Equal(t, http.StatusOK, patch.Code)
			assert.Equal(t, "interview", appUC.lastStatus)

			bad := doJSON(router, http.MethodPatch, "/api/v1/applications/app-1/status", access, gin.H{
				"status": "ghosted",
			})
			assert.Equal(t, http.StatusBadRequest, bad.Code)
			assert.Equal(t, "interview", appUC.lastStatus)
		})

		t.Run("stats", func(t *testing.T) {
			stats := doJSON(router, http.MethodGet, "/api/v1/applications/stats", access, nil)
			assert.Equal(t, http.StatusOK, stats.Code)
			statsBody := envelope(t, stats)
			data := statsBody["data"].(map[string]interface{})
			assert.Equal(t, float64(1), data["total"])
		})
	})

	t.Run("protected route without token returns 401", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/v1/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
