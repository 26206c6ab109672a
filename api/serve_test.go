package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Pjt727/classboard/api/handlers"
	"github.com/Pjt727/classboard/config"
	"github.com/Pjt727/classboard/data/kv"
	"github.com/Pjt727/classboard/planner"
	"github.com/Pjt727/classboard/schedule"
	"github.com/gorilla/websocket"
)

var testNow = time.Date(2025, time.May, 5, 9, 0, 0, 0, time.UTC)

type readOnlyStore struct {
	*kv.MemoryStore
}

func (readOnlyStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("read-only")
}

func testRouter(t *testing.T, store kv.Store, cfg config.Runtime) (*planner.Planner, http.Handler) {
	t.Helper()
	if store == nil {
		store = kv.NewMemoryStore()
	}
	if cfg.AllowedOrigins == nil {
		cfg.AllowedOrigins = []string{"*"}
	}
	p := planner.New(context.Background(), store, nil)
	h := handlers.New(p)
	h.Now = func() time.Time { return testNow }
	return p, newRouter(h, cfg)
}

func do(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

type courseViewBody struct {
	Mode    string               `json:"mode"`
	Courses []schedule.Course    `json:"courses"`
	Weekly  []schedule.DayBucket `json:"weekly"`
	Stats   schedule.CourseStats `json:"stats"`
}

func TestGetSectionWeekly(t *testing.T) {
	_, router := testRouter(t, nil, config.Runtime{})
	rec := do(t, router, http.MethodGet, "/sections/section-a?day=Tuesday", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	body := decodeBody[courseViewBody](t, rec)
	if body.Mode != "weekly" || len(body.Weekly) != 5 {
		t.Fatalf("expected the weekly grid: %+v", body)
	}
	tuesday := body.Weekly[1].Courses
	if len(tuesday) != 2 || tuesday[0].Name != "Computer Graphics" || tuesday[1].Name != "Calculus III" {
		t.Fatalf("tuesday mismatch: %+v", tuesday)
	}
	if body.Stats != (schedule.CourseStats{Courses: 2, Credits: 7, WeeklyHours: 14}) {
		t.Fatalf("stats mismatch: %+v", body.Stats)
	}
}

func TestGetSectionTable(t *testing.T) {
	_, router := testRouter(t, nil, config.Runtime{})
	rec := do(t, router, http.MethodGet, "/sections/section-b?view=table&search=prof.", nil)
	body := decodeBody[courseViewBody](t, rec)
	if body.Mode != "table" || body.Weekly != nil {
		t.Fatalf("table view should not carry the grid: %+v", body)
	}
	if len(body.Courses) != 3 {
		t.Fatalf("expected 3 courses taught by a professor, got %d", len(body.Courses))
	}
}

func TestGetSectionErrors(t *testing.T) {
	_, router := testRouter(t, nil, config.Runtime{})
	cases := []struct {
		target string
		status int
	}{
		{"/sections/section-z", http.StatusNotFound},
		{"/sections/section-a?day=Saturday", http.StatusBadRequest},
		{"/sections/section-a?view=yearly", http.StatusBadRequest},
		{"/holidays?type=regional", http.StatusBadRequest},
	}
	for _, tc := range cases {
		if rec := do(t, router, http.MethodGet, tc.target, nil); rec.Code != tc.status {
			t.Errorf("%s: got %d want %d", tc.target, rec.Code, tc.status)
		}
	}
}

func TestGetSections(t *testing.T) {
	_, router := testRouter(t, nil, config.Runtime{})
	rec := do(t, router, http.MethodGet, "/sections", nil)
	var body []struct {
		ID    string               `json:"id"`
		Title string               `json:"title"`
		Stats schedule.CourseStats `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 3 || body[0].Title != "Section A - Computer Science & Mathematics" || body[0].Stats.Credits != 17 {
		t.Fatalf("unexpected sections: %+v", body)
	}
}

func TestCourseLifecycle(t *testing.T) {
	p, router := testRouter(t, nil, config.Runtime{})
	draft := map[string]any{
		"name":       "Operating Systems",
		"instructor": "Dr. Ada Byron",
		"room":       "CS-110",
		"time":       "8:00 AM - 9:15 AM",
		"days":       []string{"Monday"},
	}

	rec := do(t, router, http.MethodPost, "/sections/section-a/courses", draft)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status %d: %s", rec.Code, rec.Body)
	}
	created := decodeBody[schedule.Course](t, rec)
	if created.ID == "" || created.Credits != schedule.DefaultCredits {
		t.Fatalf("unexpected course: %+v", created)
	}
	if rec.Header().Get(handlers.PersistedHeader) != "" {
		t.Fatalf("persisted write should not be flagged")
	}

	draft["room"] = "CS-220"
	rec = do(t, router, http.MethodPut, "/sections/section-a/courses/"+created.ID, draft)
	if rec.Code != http.StatusOK || decodeBody[schedule.Course](t, rec).Room != "CS-220" {
		t.Fatalf("update status %d: %s", rec.Code, rec.Body)
	}

	rec = do(t, router, http.MethodPut, "/sections/section-a/courses/missing", draft)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown update status %d", rec.Code)
	}

	rec = do(t, router, http.MethodDelete, "/sections/section-a/courses/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status %d", rec.Code)
	}
	rec = do(t, router, http.MethodDelete, "/sections/section-a/courses/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status %d", rec.Code)
	}

	courses, _ := p.Courses("section-a")
	if len(courses) != 5 {
		t.Fatalf("expected 5 courses, got %d", len(courses))
	}
}

func TestCourseValidation(t *testing.T) {
	p, router := testRouter(t, nil, config.Runtime{})

	rec := do(t, router, http.MethodPost, "/sections/section-a/courses", map[string]any{"name": "Only a name"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d", rec.Code)
	}
	var body struct {
		Error   string   `json:"error"`
		Missing []string `json:"missing"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Error != schedule.ErrValidation.Error() || strings.Join(body.Missing, ",") != "instructor,room,time,days" {
		t.Fatalf("unexpected body: %s", rec.Body)
	}

	rec = do(t, router, http.MethodPost, "/sections/section-a/courses", map[string]any{
		"name": "X", "instructor": "Y", "room": "Z", "time": "noon",
		"days": []string{"Friday"}, "credits": 9,
	})
	if rec.Code != http.StatusUnprocessableEntity || !strings.Contains(rec.Body.String(), "credits") {
		t.Fatalf("out of range credits accepted: %d %s", rec.Code, rec.Body)
	}

	rec = do(t, router, http.MethodPost, "/sections/section-a/courses", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed body status %d", rec.Code)
	}

	courses, _ := p.Courses("section-a")
	if len(courses) != 5 {
		t.Fatalf("rejected drafts changed the collection")
	}
}

func TestUnpersistedWriteIsFlagged(t *testing.T) {
	_, router := testRouter(t, readOnlyStore{kv.NewMemoryStore()}, config.Runtime{})
	rec := do(t, router, http.MethodPost, "/holidays", map[string]string{"name": "Reading Day", "date": "2025-04-30"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	if rec.Header().Get(handlers.PersistedHeader) != "false" {
		t.Fatalf("expected the persisted header to be false")
	}
}

func TestHolidayRoutes(t *testing.T) {
	_, router := testRouter(t, nil, config.Runtime{})

	rec := do(t, router, http.MethodGet, "/holidays?type=academic&search=break", nil)
	var view struct {
		Holidays []struct {
			Name     string `json:"name"`
			Relative string `json:"relative"`
		} `json:"holidays"`
		Upcoming []struct {
			Name string `json:"name"`
		} `json:"upcoming"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(view.Holidays) != 4 || view.Holidays[0].Name != "Fall Break" || view.Holidays[0].Relative != "Past" {
		t.Fatalf("unexpected holidays: %+v", view.Holidays)
	}
	if len(view.Upcoming) != 3 || view.Upcoming[0].Name != "Finals Week" {
		t.Fatalf("unexpected upcoming: %+v", view.Upcoming)
	}

	rec = do(t, router, http.MethodPut, "/holidays/2", map[string]string{"name": "Autumn Break", "date": "2024-10-15", "type": "academic"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status %d: %s", rec.Code, rec.Body)
	}
	rec = do(t, router, http.MethodPost, "/holidays", map[string]string{"name": "Bad", "date": "10/15/2024"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid date status %d", rec.Code)
	}
	rec = do(t, router, http.MethodDelete, "/holidays/9", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status %d", rec.Code)
	}
}

func TestHolidayCalendarRoundTrip(t *testing.T) {
	p, router := testRouter(t, nil, config.Runtime{})

	rec := do(t, router, http.MethodGet, "/holidays/export.ics", nil)
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/calendar") {
		t.Fatalf("content type %s", rec.Header().Get("Content-Type"))
	}
	calendar := rec.Body.String()

	if err := p.DeleteHoliday(context.Background(), "7"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/holidays/import", strings.NewReader(calendar))
	req.Header.Set("Content-Type", "text/calendar")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("import status %d: %s", rec.Code, rec.Body)
	}
	var result struct {
		Added []schedule.Holiday `json:"added"`
	}
	json.Unmarshal(rec.Body.Bytes(), &result)
	if len(result.Added) != 1 || result.Added[0].Name != "Memorial Day" {
		t.Fatalf("unexpected import: %+v", result.Added)
	}
}

func TestResetSection(t *testing.T) {
	p, router := testRouter(t, nil, config.Runtime{})
	p.DeleteCourse(context.Background(), "section-c", "11")

	rec := do(t, router, http.MethodPost, "/sections/section-c/reset", nil)
	if rec.Code != http.StatusOK || len(decodeBody[[]schedule.Course](t, rec)) != 5 {
		t.Fatalf("reset status %d: %s", rec.Code, rec.Body)
	}
}

func TestHome(t *testing.T) {
	_, router := testRouter(t, nil, config.Runtime{})
	rec := do(t, router, http.MethodGet, "/home", nil)
	d := decodeBody[planner.Dashboard](t, rec)
	if d.TotalCourses != 15 || d.Holidays != 10 || len(d.Upcoming) != 3 {
		t.Fatalf("unexpected dashboard: %+v", d)
	}
}

func TestRateLimit(t *testing.T) {
	_, router := testRouter(t, nil, config.Runtime{RequestsPerMin: 1, RequestBurst: 2})
	for i := 0; i < 2; i++ {
		if rec := do(t, router, http.MethodGet, "/home", nil); rec.Code != http.StatusOK {
			t.Fatalf("request %d status %d", i, rec.Code)
		}
	}
	if rec := do(t, router, http.MethodGet, "/home", nil); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}

	// another client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("second client status %d", rec.Code)
	}
}

func TestWatchStreamsChanges(t *testing.T) {
	p, router := testRouter(t, nil, config.Runtime{})
	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/watch"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := p.DeleteHoliday(context.Background(), "4"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var change planner.Change
	if err := conn.ReadJSON(&change); err != nil {
		t.Fatalf("read: %v", err)
	}
	if change.Key != schedule.HolidaysKey || change.Kind != planner.ChangeDeleted || change.ID != "4" {
		t.Fatalf("unexpected change: %+v", change)
	}
}
