package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"html/template"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"todo-manager/config"
	"todo-manager/internal/middleware"
	"todo-manager/internal/todo"
	"todo-manager/internal/todo/repository/kv"
	"todo-manager/internal/todo/usecase"
	"todo-manager/pkg/kvstore"
	"todo-manager/pkg/log"
	"todo-manager/pkg/response"
)

type testEnv struct {
	r     *gin.Engine
	uc    todo.UseCase
	store kvstore.Store
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	store := kvstore.NewMemory()
	uc := usecase.New(l, usecase.Config{Repo: kv.New(store, l), Users: []string{"alice", "bob"}})
	if err := uc.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	h, err := New(l, uc)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := gin.New()
	mw := middleware.New(l, config.RateLimitConfig{})
	RegisterPageRoutes(r.Group("/"), h, mw)
	RegisterAPIRoutes(r.Group("/api/v1"), h, mw)

	return testEnv{r: r, uc: uc, store: store}
}

func (e testEnv) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	e.r.ServeHTTP(w, req)
	return w
}

func (e testEnv) doJSON(method, path string, body any) (*httptest.ResponseRecorder, response.Resp) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	e.r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func (e testEnv) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

// pageMarkers are present on every complete render of the page.
var pageMarkers = []string{
	`id="add-todo-form"`,
	`id="add"`,
	`id="filter"`,
	`id="clear-todos"`,
	`class="list-group"`,
	`id="emptyTodoMessage"`,
	`</html>`,
}

func assertFullPage(t *testing.T, body string) {
	t.Helper()
	for _, m := range pageMarkers {
		if !strings.Contains(body, m) {
			t.Errorf("page is missing %s", m)
		}
	}
}

func TestPageEmpty(t *testing.T) {
	e := newTestEnv(t)

	w := e.get("/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	assertFullPage(t, body)
	if !strings.Contains(body, `id="emptyTodoMessage" class="text-muted mt-3"`) {
		t.Errorf("empty message should be visible on an empty list")
	}
	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("unexpected content type %q", got)
	}
}

func TestPageAddAndReload(t *testing.T) {
	e := newTestEnv(t)

	w := e.postForm("/todos", url.Values{
		"title":      {"Write report"},
		"user":       {"alice"},
		"deadline":   {"2024-01-01"},
		"isPriority": {"Y"},
	})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %q", w.Code, w.Header().Get("Location"))
	}

	body := e.get("/").Body.String()
	assertFullPage(t, body)
	if !strings.Contains(body, `value="Write report"`) {
		t.Errorf("page does not render the new task")
	}
	if !strings.Contains(body, "Write report added successfully!") {
		t.Errorf("page does not show the success notification")
	}

	b := e.uc.Board(context.Background())
	if len(b.Items) != 1 || !b.Items[0].Task.IsPriority {
		t.Fatalf("unexpected board %+v", b)
	}
	if !strings.Contains(body, `id="prio-`+b.Items[0].Task.ID+`" checked`) {
		t.Errorf("priority checkbox should be checked")
	}
}

func TestPageAddUncheckedPriority(t *testing.T) {
	e := newTestEnv(t)

	e.postForm("/todos", url.Values{"title": {"Buy milk"}, "user": {"bob"}, "deadline": {""}})

	b := e.uc.Board(context.Background())
	if len(b.Items) != 1 || b.Items[0].Task.IsPriority {
		t.Errorf("absent checkbox must mean no priority, got %+v", b.Items)
	}

	raw, _, _ := e.store.Get(context.Background(), kv.SlotTasks)
	if !strings.Contains(raw, `"isPriority":"N"`) {
		t.Errorf("expected N flag in stored payload, got %s", raw)
	}
}

func TestPageAddInvalid(t *testing.T) {
	e := newTestEnv(t)

	w := e.postForm("/todos", url.Values{"title": {"Buy milk"}, "user": {"mallory"}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	body := w.Body.String()
	assertFullPage(t, body)
	if !strings.Contains(body, todo.ErrUnknownUser.Error()) {
		t.Errorf("expected the validation message on the page")
	}
	if !strings.Contains(body, `value="Buy milk"`) {
		t.Errorf("add form should keep the submitted title")
	}
	if n := len(e.uc.Board(context.Background()).Items); n != 0 {
		t.Errorf("invalid task must not be added, got %d", n)
	}
}

func TestPageSaveDeleteClear(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		e.postForm("/todos", url.Values{"title": {title}, "user": {"alice"}})
	}
	items := e.uc.Board(ctx).Items
	idB := items[1].Task.ID

	w := e.postForm("/todos/"+idB+"/save", url.Values{"title": {"B2"}, "user": {"bob"}, "deadline": {"2024-05-05"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("save: expected 303, got %d", w.Code)
	}
	got := e.uc.Board(ctx).Items[1].Task
	if got.ID != idB || got.Title != "B2" || got.User != "bob" {
		t.Errorf("unexpected saved task %+v", got)
	}

	w = e.postForm("/todos/"+items[0].Task.ID+"/delete", nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("delete: expected 303, got %d", w.Code)
	}
	b := e.uc.Board(ctx)
	if len(b.Items) != 2 || b.Items[0].Task.ID != idB {
		t.Errorf("unexpected items after delete: %+v", b.Items)
	}

	// A stale id is a no-op.
	w = e.postForm("/todos/"+items[0].Task.ID+"/delete", nil)
	if w.Code != http.StatusSeeOther || len(e.uc.Board(ctx).Items) != 2 {
		t.Errorf("stale delete should redirect without change, got %d", w.Code)
	}

	e.postForm("/todos/clear", nil)
	if n := len(e.uc.Board(ctx).Items); n != 0 {
		t.Errorf("clear all left %d items", n)
	}
	raw, _, _ := e.store.Get(ctx, kv.SlotTasks)
	if raw != "[]" {
		t.Errorf("expected empty persisted collection, got %s", raw)
	}
}

func TestPageFilter(t *testing.T) {
	e := newTestEnv(t)

	e.postForm("/todos", url.Values{"title": {"Buy milk"}, "user": {"alice"}})
	e.postForm("/todos", url.Values{"title": {"Call mom"}, "user": {"bob"}})
	e.postForm("/filter", url.Values{"filter": {"BUY"}})

	b := e.uc.Board(context.Background())
	if !b.Items[0].Visible || b.Items[1].Visible {
		t.Errorf("unexpected visibility %+v", b.Items)
	}

	body := e.get("/").Body.String()
	assertFullPage(t, body)
	if !strings.Contains(body, `value="buy"`) {
		t.Errorf("filter input should show the stored lowercased filter")
	}
	if strings.Count(body, "list-group-item d-none") != 1 {
		t.Errorf("expected exactly one hidden item")
	}

	stored, _, _ := e.store.Get(context.Background(), kv.SlotFilterText)
	if stored != "buy" {
		t.Errorf("expected persisted filter 'buy', got %q", stored)
	}

	e.postForm("/filter", url.Values{"filter": {"zzz"}})
	body = e.get("/").Body.String()
	if strings.Contains(body, `id="emptyTodoMessage" class="text-muted mt-3 hidden"`) {
		t.Errorf("empty message should be visible when nothing matches")
	}
}

func TestAPI(t *testing.T) {
	e := newTestEnv(t)

	w, resp := e.doJSON(http.MethodPost, "/api/v1/todos", map[string]any{
		"title": "Write report", "user": "alice", "deadline": "2024-01-01", "is_priority": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	data := resp.Data.(map[string]interface{})
	task := data["task"].(map[string]interface{})
	id := task["id"].(string)
	if id == "" || task["is_priority"] != true {
		t.Errorf("unexpected task payload %v", task)
	}

	w, _ = e.doJSON(http.MethodPut, "/api/v1/todos/"+id, map[string]any{"title": "Write report v2", "user": "bob"})
	if w.Code != http.StatusOK {
		t.Errorf("update: expected 200, got %d", w.Code)
	}

	w, resp = e.doJSON(http.MethodPut, "/api/v1/filter", map[string]any{"filter": "V2"})
	if w.Code != http.StatusOK {
		t.Fatalf("filter: expected 200, got %d", w.Code)
	}
	board := resp.Data.(map[string]interface{})
	if board["filter"] != "v2" || board["visible_count"] != float64(1) {
		t.Errorf("unexpected board %v", board)
	}

	w, _ = e.doJSON(http.MethodDelete, "/api/v1/todos/"+id, nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete: expected 200, got %d", w.Code)
	}

	w, resp = e.doJSON(http.MethodDelete, "/api/v1/todos/"+id, nil)
	if w.Code != http.StatusNotFound || resp.Message != "task not found" {
		t.Errorf("stale delete: expected 404, got %d %q", w.Code, resp.Message)
	}

	w, _ = e.doJSON(http.MethodPut, "/api/v1/todos/missing", map[string]any{"title": "x", "user": "alice"})
	if w.Code != http.StatusNotFound {
		t.Errorf("stale update: expected 404, got %d", w.Code)
	}
}

func TestAPIValidation(t *testing.T) {
	e := newTestEnv(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"user": "alice"}},
		{"unknown user", map[string]any{"title": "x", "user": "mallory"}},
		{"bad deadline", map[string]any{"title": "x", "user": "alice", "deadline": "tomorrow"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := e.doJSON(http.MethodPost, "/api/v1/todos", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestAPIDeleteAll(t *testing.T) {
	e := newTestEnv(t)

	e.doJSON(http.MethodPost, "/api/v1/todos", map[string]any{"title": "A", "user": "alice"})
	e.doJSON(http.MethodPost, "/api/v1/todos", map[string]any{"title": "B", "user": "bob"})

	w, _ := e.doJSON(http.MethodDelete, "/api/v1/todos", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	_, resp := e.doJSON(http.MethodGet, "/api/v1/todos", nil)
	board := resp.Data.(map[string]interface{})
	if items := board["items"].([]interface{}); len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
	if board["empty"] != true {
		t.Errorf("expected empty indicator")
	}
}

func TestPageClientHooks(t *testing.T) {
	e := newTestEnv(t)

	body := e.get("/").Body.String()
	if !strings.Contains(body, `data-ttl-ms="3000"`) {
		t.Errorf("notification lifetime should be rendered in milliseconds")
	}
	if !strings.Contains(body, `querySelectorAll(".alert-success")`) {
		t.Errorf("success notifications should be removed client-side")
	}
	if !strings.Contains(body, `filter.addEventListener("input"`) {
		t.Errorf("filter input should refilter on every input event")
	}
	if !strings.Contains(body, `fetch("/api/v1/filter"`) {
		t.Errorf("filter hook should call the filter API")
	}
}

func TestRenderPageFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.DebugLevel)
	l := log.New(zap.New(core))
	uc := usecase.New(l, usecase.Config{Users: []string{"alice"}})

	h := &handler{
		l:    l,
		uc:   uc,
		tmpl: template.Must(template.New(pageTemplate).Parse(`<p>{{.Board.Unknown}}</p>`)),
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h.Page(c)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "<p>") {
		t.Errorf("partial page must not be sent, got %q", w.Body.String())
	}
	if logs.FilterMessageSnippet("renderPage").FilterLevelExact(zapcore.ErrorLevel).Len() != 1 {
		t.Errorf("expected the render failure to be logged")
	}
}

func TestParseTemplates(t *testing.T) {
	tmpl, err := parseTemplates()
	if err != nil {
		t.Fatalf("parseTemplates: %v", err)
	}

	var zero bytes.Buffer
	if err := tmpl.ExecuteTemplate(&zero, pageTemplate, pageData{}); err != nil {
		t.Fatalf("execute zero page: %v", err)
	}
	assertFullPage(t, zero.String())

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, pageTemplate, pageData{
		Board: todo.Board{
			Items: []todo.BoardItem{{Task: todo.Task{ID: "x1", Title: "<script>", User: "bob"}, Visible: true}},
			Users: []string{"alice", "bob"},
			Mode:  todo.ModeEphemeral,
		},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	assertFullPage(t, out)
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("title must be escaped")
	}
	if !strings.Contains(out, "will not persist") {
		t.Errorf("ephemeral banner missing")
	}
	if !strings.Contains(out, `<option value="bob" selected>`) {
		t.Errorf("assignee should be preselected")
	}
}
