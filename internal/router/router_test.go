package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"training-pets/internal/adapters/storage/memory"
	"training-pets/internal/platform/logger"
	"training-pets/internal/ports/store"
	"training-pets/internal/router"
)

// failingStore simula una conexión viva que falla a mitad de consulta:
// Status reporta conectado, pero toda operación devuelve error. Es el caso
// opuesto a store.Unavailable (ausencia de conexión, lecturas vacías).
type failingStore struct {
	err error
}

func (f failingStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	return "", f.err
}

func (f failingStore) Find(ctx context.Context, collection string, filter store.Filter, limit int64) ([]store.Document, error) {
	return nil, f.err
}

func (f failingStore) UpdateByID(ctx context.Context, collection string, id string, set store.Document) error {
	return f.err
}

func (f failingStore) CollectionNames(ctx context.Context) ([]string, error) {
	return nil, f.err
}

func (f failingStore) Status() store.Status {
	return store.Status{State: store.StateConnected}
}

func newTestServer(t *testing.T, st store.Store) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Store: st,
		Log:   logger.New(logger.Options{Level: logger.Error}),
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_DogCreateAndList(t *testing.T) {
	ts := newTestServer(t, memory.New())

	id := createRecord(t, ts.URL, "/dogs", map[string]any{
		"name":       "Milo",
		"breed":      "mixed",
		"age_months": 14,
		"tags":       []string{"puppy", "agility"},
	})
	if !store.ValidID(id) {
		t.Fatalf("expected store-shaped id, got %q", id)
	}

	items := listItems(t, ts.URL, "/dogs")
	if len(items) != 1 {
		t.Fatalf("expected 1 dog, got %d", len(items))
	}
	if items[0]["name"] != "Milo" {
		t.Fatalf("expected name Milo, got %v", items[0]["name"])
	}
	if items[0]["_id"] != id {
		t.Fatalf("expected _id %q in listing, got %v", id, items[0]["_id"])
	}
}

func TestHTTP_DogValidation(t *testing.T) {
	ts := newTestServer(t, memory.New())

	// name faltante => 400 con detalle por campo
	st, body := doReq(t, ts.URL, "POST", "/dogs", map[string]any{"breed": "mixed"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d body=%s", st, body)
	}
	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Fields["name"] != "required" {
		t.Fatalf("expected name=required, got %v", resp.Fields)
	}

	// age_months negativo => 400
	st, _ = doReq(t, ts.URL, "POST", "/dogs", map[string]any{"name": "Milo", "age_months": -1})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative age_months, got %d", st)
	}
}

func TestHTTP_ExerciseDefaults(t *testing.T) {
	ts := newTestServer(t, memory.New())

	createRecord(t, ts.URL, "/exercises", map[string]any{"title": "Sit"})

	items := listItems(t, ts.URL, "/exercises")
	if len(items) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(items))
	}
	if items[0]["difficulty"] != "beginner" {
		t.Fatalf("expected default difficulty beginner, got %v", items[0]["difficulty"])
	}

	// duration_min default 5 (bson lo devuelve como número)
	if n := asInt(items[0]["duration_min"]); n != 5 {
		t.Fatalf("expected default duration_min 5, got %v", items[0]["duration_min"])
	}

	// difficulty fuera del enum => 400
	st, _ := doReq(t, ts.URL, "POST", "/exercises", map[string]any{"title": "Down", "difficulty": "expert"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown difficulty, got %d", st)
	}
}

func TestHTTP_TaskUpdateAndComplete(t *testing.T) {
	ts := newTestServer(t, memory.New())

	taskID := createRecord(t, ts.URL, "/tasks", map[string]any{
		"title":  "Morning session",
		"dog_id": "dog-1",
	})

	// Defaults al crear
	items := listItems(t, ts.URL, "/tasks")
	if items[0]["status"] != "pending" || items[0]["language"] != "en" {
		t.Fatalf("expected defaults pending/en, got %v/%v", items[0]["status"], items[0]["language"])
	}

	// PATCH sparse: language cambia, title en null no se toca
	st, body := doReq(t, ts.URL, "PATCH", "/tasks/"+taskID, map[string]any{
		"title":    nil,
		"language": "he",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 patch, got %d body=%s", st, body)
	}

	items = listItems(t, ts.URL, "/tasks")
	if items[0]["title"] != "Morning session" {
		t.Fatalf("null field must not be applied, title=%v", items[0]["title"])
	}
	if items[0]["language"] != "he" {
		t.Fatalf("expected language he, got %v", items[0]["language"])
	}

	// Campo desconocido => 400
	st, _ = doReq(t, ts.URL, "PATCH", "/tasks/"+taskID, map[string]any{"owner": "x"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", st)
	}

	// Complete, dos veces: idempotente
	for i := 0; i < 2; i++ {
		st, body = doReq(t, ts.URL, "POST", "/tasks/"+taskID+"/complete", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 complete (call %d), got %d body=%s", i+1, st, body)
		}
	}

	items = listItems(t, ts.URL, "/tasks?status=completed")
	if len(items) != 1 || items[0]["status"] != "completed" {
		t.Fatalf("expected exactly 1 completed task, got %v", items)
	}
}

func TestHTTP_TaskIdentifierErrors(t *testing.T) {
	ts := newTestServer(t, memory.New())

	// id mal formado => 400, sin tocar el store
	st, _ := doReq(t, ts.URL, "PATCH", "/tasks/not-an-id", map[string]any{"status": "completed"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "POST", "/tasks/not-an-id/complete", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id on complete, got %d", st)
	}

	// id bien formado pero inexistente => 404
	ghost := store.NewID()
	st, _ = doReq(t, ts.URL, "PATCH", "/tasks/"+ghost, map[string]any{"status": "completed"})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "POST", "/tasks/"+ghost+"/complete", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id on complete, got %d", st)
	}
}

func TestHTTP_AnalyticsSummary(t *testing.T) {
	ts := newTestServer(t, memory.New())

	// 4 tareas para dog-1, 3 completadas
	for i := 0; i < 4; i++ {
		status := "completed"
		if i == 3 {
			status = "pending"
		}
		createRecord(t, ts.URL, "/tasks", map[string]any{
			"title":  fmt.Sprintf("task-%d", i),
			"dog_id": "dog-1",
			"status": status,
		})
	}

	var sum struct {
		TotalTasks     int      `json:"total_tasks"`
		CompletedTasks int      `json:"completed_tasks"`
		SuccessRate    *float64 `json:"success_rate"`
	}

	st, body := doReq(t, ts.URL, "GET", "/analytics/summary?dog_id=dog-1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 summary, got %d", st)
	}
	if err := json.Unmarshal(body, &sum); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sum.TotalTasks != 4 || sum.CompletedTasks != 3 {
		t.Fatalf("expected 4/3, got %d/%d", sum.TotalTasks, sum.CompletedTasks)
	}
	if sum.SuccessRate != nil {
		t.Fatalf("expected null success_rate without logs, got %v", *sum.SuccessRate)
	}

	// 5 logs, 2 con éxito => 0.4
	taskID := store.NewID()
	for i := 0; i < 5; i++ {
		createRecord(t, ts.URL, "/progress", map[string]any{
			"task_id": taskID,
			"dog_id":  "dog-1",
			"success": i < 2,
		})
	}

	st, body = doReq(t, ts.URL, "GET", "/analytics/summary?dog_id=dog-1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 summary, got %d", st)
	}
	if err := json.Unmarshal(body, &sum); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sum.SuccessRate == nil || *sum.SuccessRate != 0.4 {
		t.Fatalf("expected success_rate 0.4, got %v", sum.SuccessRate)
	}
}

func TestHTTP_ProgressFilters(t *testing.T) {
	ts := newTestServer(t, memory.New())

	createRecord(t, ts.URL, "/progress", map[string]any{"task_id": "t1", "dog_id": "d1", "success": true})
	createRecord(t, ts.URL, "/progress", map[string]any{"task_id": "t2", "dog_id": "d1", "success": false})
	createRecord(t, ts.URL, "/progress", map[string]any{"task_id": "t2", "dog_id": "d2", "success": true})

	if n := len(listItems(t, ts.URL, "/progress?dog_id=d1")); n != 2 {
		t.Fatalf("expected 2 logs for d1, got %d", n)
	}
	if n := len(listItems(t, ts.URL, "/progress?task_id=t2&dog_id=d2")); n != 1 {
		t.Fatalf("expected 1 log for t2+d2, got %d", n)
	}

	// success faltante => 400 (false explícito sí es válido)
	st, _ := doReq(t, ts.URL, "POST", "/progress", map[string]any{"task_id": "t3"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing success, got %d", st)
	}
}

func TestHTTP_ListLimits(t *testing.T) {
	ts := newTestServer(t, memory.New())

	for i := 0; i < 5; i++ {
		createRecord(t, ts.URL, "/dogs", map[string]any{"name": fmt.Sprintf("dog-%d", i)})
	}

	if n := len(listItems(t, ts.URL, "/dogs?limit=2")); n != 2 {
		t.Fatalf("expected limit=2 to cap results, got %d", n)
	}
	// Fuera de rango o inválido => cae al default (100), devuelve todo
	if n := len(listItems(t, ts.URL, "/dogs?limit=0")); n != 5 {
		t.Fatalf("expected default limit for limit=0, got %d", n)
	}
	if n := len(listItems(t, ts.URL, "/dogs?limit=9999")); n != 5 {
		t.Fatalf("expected default limit for limit>max, got %d", n)
	}
}

func TestHTTP_DegradedStore(t *testing.T) {
	ts := newTestServer(t, store.Unavailable{})

	// Lecturas degradan a vacío, nunca 500
	items := listItems(t, ts.URL, "/dogs")
	if len(items) != 0 {
		t.Fatalf("expected empty items without store, got %d", len(items))
	}

	// Escrituras fallan sin ambigüedad
	st, body := doReq(t, ts.URL, "POST", "/dogs", map[string]any{"name": "Milo"})
	if st != http.StatusInternalServerError {
		t.Fatalf("expected 500 create without store, got %d body=%s", st, body)
	}
	st, _ = doReq(t, ts.URL, "PATCH", "/tasks/"+store.NewID(), map[string]any{"status": "completed"})
	if st != http.StatusInternalServerError {
		t.Fatalf("expected 500 update without store, got %d", st)
	}

	// /test lo reporta como no disponible
	var diag map[string]any
	_, body = doReq(t, ts.URL, "GET", "/test", nil)
	if err := json.Unmarshal(body, &diag); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diag["connection_status"] != "Not Connected" {
		t.Fatalf("expected Not Connected, got %v", diag["connection_status"])
	}
}

func TestHTTP_FailingStoreReadsPropagate(t *testing.T) {
	// A diferencia de la ausencia de conexión (lecturas vacías), un fallo a
	// mitad de consulta sobre una conexión viva se propaga como 500.
	ts := newTestServer(t, failingStore{err: errors.New("connection reset mid-query")})

	for _, path := range []string{"/dogs", "/exercises", "/tasks", "/progress", "/live/sessions", "/analytics/summary"} {
		st, body := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusInternalServerError {
			t.Fatalf("expected 500 for %s on failing store, got %d body=%s", path, st, body)
		}

		var resp map[string]string
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal %s: %v", path, err)
		}
		if resp["error"] != "internal error" {
			t.Fatalf("expected internal error for %s, got %v", path, resp)
		}
	}

	st, _ := doReq(t, ts.URL, "POST", "/dogs", map[string]any{"name": "Milo"})
	if st != http.StatusInternalServerError {
		t.Fatalf("expected 500 create on failing store, got %d", st)
	}
}

func TestHTTP_DiagnosticsInlineError(t *testing.T) {
	// /test es el único endpoint que no propaga el fallo a mitad de consulta:
	// lo reporta inline, truncado a 80 caracteres y con UTF-8 válido aunque
	// el corte caiga en medio de un multibyte.
	msg := strings.Repeat("conexión caída ", 10) // >80 runas, con multibyte
	ts := newTestServer(t, failingStore{err: errors.New(msg)})

	st, body := doReq(t, ts.URL, "GET", "/test", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 diagnostics on failing store, got %d", st)
	}

	var diag map[string]any
	if err := json.Unmarshal(body, &diag); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	db, _ := diag["database"].(string)
	const prefix = "⚠️ Connected but Error: "
	if !strings.HasPrefix(db, prefix) {
		t.Fatalf("expected inline degraded string, got %q", db)
	}

	detail := strings.TrimPrefix(db, prefix)
	if !utf8.ValidString(detail) {
		t.Fatalf("truncated error must stay valid UTF-8: %q", detail)
	}
	if n := utf8.RuneCountInString(detail); n > 80 {
		t.Fatalf("expected error detail capped at 80 chars, got %d", n)
	}
	if diag["connection_status"] != "Connected" {
		t.Fatalf("expected Connected (the handle is alive), got %v", diag["connection_status"])
	}
}

func TestHTTP_HealthRootAndDiagnostics(t *testing.T) {
	ts := newTestServer(t, memory.New())

	var health map[string]string
	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
	_ = json.Unmarshal(body, &health)
	if health["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", health)
	}

	var root map[string]string
	_, body = doReq(t, ts.URL, "GET", "/", nil)
	_ = json.Unmarshal(body, &root)
	if root["message"] != "training-pets backend running" {
		t.Fatalf("unexpected root message: %v", root)
	}

	createRecord(t, ts.URL, "/dogs", map[string]any{"name": "Milo"})

	var diag map[string]any
	_, body = doReq(t, ts.URL, "GET", "/test", nil)
	if err := json.Unmarshal(body, &diag); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diag["connection_status"] != "Connected" {
		t.Fatalf("expected Connected, got %v", diag["connection_status"])
	}
	cols, _ := diag["collections"].([]any)
	if len(cols) != 1 || cols[0] != "dog" {
		t.Fatalf("expected [dog] collections, got %v", diag["collections"])
	}
}

func TestHTTP_LiveSessions(t *testing.T) {
	ts := newTestServer(t, memory.New())

	createRecord(t, ts.URL, "/live/sessions", map[string]any{"dog_id": "d1", "peer_id": "peer-9"})

	items := listItems(t, ts.URL, "/live/sessions?dog_id=d1")
	if len(items) != 1 {
		t.Fatalf("expected 1 session, got %d", len(items))
	}
	if items[0]["status"] != "idle" {
		t.Fatalf("expected default status idle, got %v", items[0]["status"])
	}

	// status fuera del enum => 400
	st, _ := doReq(t, ts.URL, "POST", "/live/sessions", map[string]any{"status": "paused"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown session status, got %d", st)
	}
}

// -------------------------
// Helpers
// -------------------------

func createRecord(t *testing.T, baseURL, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func listItems(t *testing.T, baseURL, path string) []map[string]any {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", path, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal items: %v body=%s", err, string(body))
	}
	if resp.Items == nil {
		t.Fatalf("expected items array, got %s", string(body))
	}
	return resp.Items
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

// asInt normaliza los números que el roundtrip json/bson puede devolver
// como float64, int32 o int64.
func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case int:
		return n
	default:
		return -1
	}
}
