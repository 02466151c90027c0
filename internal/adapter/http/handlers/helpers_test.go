package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"aerocode/internal/adapter/http/middleware"
	"aerocode/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	admin    = entities.Employee{ID: "adm", Name: "Ana", Username: "ana", PermissionLevel: entities.PermissionAdmin}
	engineer = entities.Employee{ID: "eng", Name: "Edu", Username: "edu", PermissionLevel: entities.PermissionEngineer}
)

// asActor stands in for the JWT middleware.
func asActor(actor entities.Employee) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextActor, actor)
		c.Set(middleware.ContextActorID, actor.ID)
		c.Next()
	}
}

func newRouter(actor *entities.Employee) *gin.Engine {
	r := gin.New()
	if actor != nil {
		r.Use(asActor(*actor))
	}
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRequest(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
