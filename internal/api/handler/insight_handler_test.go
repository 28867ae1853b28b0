package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"learning_iq/internal/app/service"
	"learning_iq/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

func newInsightRouter(users ...*model.User) http.Handler {
	userRepo := &stubUserRepo{users: map[int64]*model.User{}}
	for _, u := range users {
		userRepo.users[u.ID] = u
	}
	catalogRepo := &stubCatalogRepo{topics: []model.Topic{
		{ID: 1, Name: "Arrays", SubjectID: 1, Prerequisites: []int64{}},
		{ID: 2, Name: "Linked List", SubjectID: 1, Prerequisites: []int64{1}},
	}}

	r := chi.NewRouter()
	NewInsightHandler(service.NewInsightService(userRepo, catalogRepo)).RegisterRoutes(r)
	return r
}

// The recommendations payload is double-encoded on the wire: the object is
// serialized to a string and that string is wrapped in JSON again. Existing
// clients parse the inner string, so the shape must not flatten into a plain
// nested object.
func TestRecommendations_WireShapeIsDoubleEncoded(t *testing.T) {
	router := newInsightRouter(&model.User{
		ID: 1, Name: "Avinash", Email: "avinash@example.com",
		MasteryMap: map[string]float64{"1": 30, "2": 90},
	})

	req := httptest.NewRequest(http.MethodGet, "/recommendations/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a JSON object: %v", err)
	}

	// The value must be a JSON string, not a nested object.
	var inner string
	if err := json.Unmarshal(body["recommendations"], &inner); err != nil {
		t.Fatalf("recommendations value is not a string: %v (raw: %s)", err, body["recommendations"])
	}

	var plan service.Recommendation
	if err := json.Unmarshal([]byte(inner), &plan); err != nil {
		t.Fatalf("inner string does not decode into the plan object: %v", err)
	}
	if plan.NextTopic != "Arrays" {
		t.Errorf("next_topic = %q, want Arrays (weakest topic)", plan.NextTopic)
	}
	if len(plan.DailyPlan) != 7 {
		t.Errorf("daily_plan has %d entries, want 7", len(plan.DailyPlan))
	}
	if plan.Priority != "weak foundational concepts" {
		t.Errorf("priority = %q, want weak foundational concepts", plan.Priority)
	}
}

func TestRecommendations_UnknownUserStillDoubleEncoded(t *testing.T) {
	router := newInsightRouter()

	req := httptest.NewRequest(http.MethodGet, "/recommendations/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response shape changed: %v", err)
	}
	var plan service.Recommendation
	if err := json.Unmarshal([]byte(body["recommendations"]), &plan); err != nil {
		t.Fatalf("fallback payload not double-encoded: %v", err)
	}
	if plan.Priority != "foundational concepts" {
		t.Errorf("priority = %q, want the fallback plan", plan.Priority)
	}
}
