package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/sandeepkv93/go-service-template/internal/auth"
	"github.com/sandeepkv93/go-service-template/internal/config"
	"github.com/sandeepkv93/go-service-template/internal/domain"
	"github.com/sandeepkv93/go-service-template/internal/http/handler"
	servicegomock "github.com/sandeepkv93/go-service-template/internal/service/gomock"
)

func newTestRouter(t *testing.T, features config.Features, tokens []string) (http.Handler, *servicegomock.MockUserService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	userSvc := servicegomock.NewMockUserService(ctrl)
	h := NewRouter(Dependencies{
		Features:         features,
		Authenticator:    auth.NewBearerAuthenticator(tokens),
		ItemHandler:      handler.NewItemHandler(),
		ProtectedHandler: handler.NewProtectedHandler(),
		UserHandler:      handler.NewUserHandler(userSvc),
	})
	return h, userSvc
}

func get(r http.Handler, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheckAlwaysAvailable(t *testing.T) {
	r, _ := newTestRouter(t, config.Features{}, nil)
	rr := get(r, "/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestItemRouteAlwaysAvailable(t *testing.T) {
	r, _ := newTestRouter(t, config.Features{}, nil)
	rr := get(r, "/items/7?q=hello", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var body struct {
		ItemID uint    `json:"item_id"`
		Q      *string `json:"q"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.ItemID != 7 || body.Q == nil || *body.Q != "hello" {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestProtectedGroupAbsentWhenAuthDisabled(t *testing.T) {
	r, _ := newTestRouter(t, config.Features{Auth: false}, nil)
	for _, path := range []string{"/protected/", "/protected/data"} {
		rr := get(r, path, "Bearer t1")
		if rr.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404 when auth disabled, got %d", path, rr.Code)
		}
	}
}

func TestProtectedGroupStatusMatrix(t *testing.T) {
	r, _ := newTestRouter(t, config.Features{Auth: true}, []string{"t1", "t2"})

	cases := []struct {
		name          string
		authorization string
		want          int
	}{
		{name: "first configured token", authorization: "Bearer t1", want: http.StatusOK},
		{name: "second configured token", authorization: "Bearer t2", want: http.StatusOK},
		{name: "unknown token", authorization: "Bearer t3", want: http.StatusForbidden},
		{name: "no header", authorization: "", want: http.StatusUnauthorized},
		{name: "empty token", authorization: "Bearer ", want: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := get(r, "/protected/", tc.authorization)
			if rr.Code != tc.want {
				t.Fatalf("expected %d, got %d body=%s", tc.want, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestProtectedRootBodyConfirmsAccess(t *testing.T) {
	r, _ := newTestRouter(t, config.Features{Auth: true}, []string{"abc123"})
	rr := get(r, "/protected/", "Bearer abc123")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["message"] != "Access granted" || body["authenticated"] != "true" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestUserGroupAbsentWhenDatabaseDisabled(t *testing.T) {
	r, userSvc := newTestRouter(t, config.Features{Database: false}, nil)
	userSvc.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	for _, path := range []string{"/users/", "/users/1"} {
		rr := get(r, path, "")
		if rr.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404 when database disabled, got %d", path, rr.Code)
		}
	}
}

func TestUserGroupPresentWhenDatabaseEnabled(t *testing.T) {
	r, userSvc := newTestRouter(t, config.Features{Database: true}, nil)
	userSvc.EXPECT().GetByID(gomock.Any(), uint(1)).Return(&domain.User{ID: 1, Email: "a@b.c", Username: "a"}, nil)
	rr := get(r, "/users/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSecurityHeadersApplied(t *testing.T) {
	r, _ := newTestRouter(t, config.Features{}, nil)
	rr := get(r, "/", "")
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("expected security headers on responses")
	}
}
