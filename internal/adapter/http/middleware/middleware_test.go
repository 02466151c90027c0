package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aerocode/internal/config"
	"aerocode/internal/domain/entities"
	"aerocode/internal/infrastructure/auth"
	"aerocode/internal/infrastructure/metrics"
	"aerocode/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type resolverFunc func(ctx context.Context, id string) (entities.Employee, error)

func (f resolverFunc) GetUserByID(ctx context.Context, id string) (entities.Employee, error) {
	return f(ctx, id)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		id := w.Header().Get(HeaderRequestID)
		if id == "" || w.Body.String() != id {
			t.Fatalf("expected generated request id, got header %q body %q", id, w.Body.String())
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Header().Get(HeaderRequestID) != "req-1" {
			t.Fatalf("expected req-1, got %q", w.Header().Get(HeaderRequestID))
		}
	})
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS())
	r.GET("/v1/aeronaves", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/v1/aeronaves", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("expected allow origin header")
	}
	if !strings.Contains(w.Header().Get("Access-Control-Expose-Headers"), HeaderResponseTime) {
		t.Fatalf("expected timing headers to be exposed")
	}
}

func TestTiming(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()
	r := gin.New()
	r.Use(Timing(m))
	r.GET("/v1/aeronaves/:codigo", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.DELETE("/v1/aeronaves/:codigo", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(method, "/v1/aeronaves/PR-1", nil))
			if w.Header().Get(HeaderRequestReceivedAt) == "" {
				t.Fatalf("expected %s header", HeaderRequestReceivedAt)
			}
			if !strings.HasSuffix(w.Header().Get(HeaderResponseTime), "ms") {
				t.Fatalf("expected %s in ms, got %q", HeaderResponseTime, w.Header().Get(HeaderResponseTime))
			}
			if w.Header().Get(HeaderServerTimestamp) == "" {
				t.Fatalf("expected %s header", HeaderServerTimestamp)
			}
		})
	}

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(w.Body.String(), `route="/v1/aeronaves/:codigo",status="204"`) {
		t.Fatalf("expected request histogram to carry the route template")
	}
}

func TestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) {
		c.Set(ContextActorID, "adm")
		c.Status(http.StatusOK)
	})
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/missing", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(entries))
	}
	if entries[0].Message != "Request" || entries[0].ContextMap()["actor_id"] != "adm" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Level != zap.WarnLevel || entries[2].Level != zap.ErrorLevel {
		t.Fatalf("expected warn then error, got %v and %v", entries[1].Level, entries[2].Level)
	}
}

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenManager(config.JWTConfig{Secret: "s", TokenTTL: time.Hour})
	ana := entities.Employee{ID: "adm", Username: "ana", PermissionLevel: entities.PermissionAdmin}

	newRouter := func(resolver ActorResolver) *gin.Engine {
		r := gin.New()
		r.Use(JWTAuth(tokens, resolver))
		r.GET("/me", func(c *gin.Context) {
			actor, ok := ActorFromContext(c)
			if !ok {
				c.Status(http.StatusTeapot)
				return
			}
			c.String(http.StatusOK, string(actor.PermissionLevel))
		})
		return r
	}
	found := resolverFunc(func(_ context.Context, id string) (entities.Employee, error) {
		if id != "adm" {
			return entities.Employee{}, usecase.ErrUserNotFound
		}
		return ana, nil
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(found).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		newRouter(found).ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "INVALID_TOKEN") {
			t.Fatalf("expected 401 INVALID_TOKEN, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("valid header loads actor from storage", func(t *testing.T) {
		token, _, _ := tokens.Issue(entities.Employee{ID: "adm", PermissionLevel: entities.PermissionOperator})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter(found).ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "ADMIN" {
			t.Fatalf("expected 200 ADMIN, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("query token", func(t *testing.T) {
		token, _, _ := tokens.Issue(ana)
		w := httptest.NewRecorder()
		newRouter(found).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me?token="+token, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("deleted account", func(t *testing.T) {
		token, _, _ := tokens.Issue(entities.Employee{ID: "gone"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter(found).ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "ACTOR_NOT_FOUND") {
			t.Fatalf("expected 401 ACTOR_NOT_FOUND, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		broken := resolverFunc(func(context.Context, string) (entities.Employee, error) {
			return entities.Employee{}, errors.New("dynamo down")
		})
		token, _, _ := tokens.Issue(ana)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter(broken).ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("revoked", func(t *testing.T) {
		token, _, _ := tokens.Issue(ana)
		claims, _ := tokens.Parse(token)
		tokens.Revoke(claims)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newRouter(found).ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
