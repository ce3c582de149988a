// handlers_test.go provides a shared harness: the real route tree over a
// service with no database, exercising the storage-unavailable contract end
// to end.
package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/internal/blog"
	"inkwell/internal/database"
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/router"
	"inkwell/internal/store"
)

// offlineService builds a blog.Service over an unconfigured database handle.
func offlineService(degradedReads bool) *blog.Service {
	h := database.NewHandle("")
	return blog.New(
		store.NewArticleStore(h),
		store.NewCategoryStore(h),
		store.NewTagStore(h),
		store.NewUserStore(h, ""),
		degradedReads,
	)
}

// testRouter wires the handler groups into the real route tree, without
// authentication or rate limiting. Tests inject identities directly into the
// request context.
func testRouter(degradedReads bool) http.Handler {
	svc := offlineService(degradedReads)
	return router.New(handlers.NewPublic(svc), handlers.NewAdmin(svc), router.Options{})
}

// doRequest runs a request through the handler and returns the recorder.
func doRequest(t *testing.T, h http.Handler, method, target, body string, user *models.User) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if user != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), user))
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a JSON response body into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func testAdmin() *models.User {
	return &models.User{ID: 1, OpenID: "admin", Role: models.RoleAdmin}
}

func testMember() *models.User {
	return &models.User{ID: 2, OpenID: "member", Role: models.RoleMember}
}
