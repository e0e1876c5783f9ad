package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotpoll/core/middleware"
	eventEntity "slotpoll/modules/event/entity"
	"slotpoll/modules/event/repository"
	"slotpoll/modules/schedule/controller"
	"slotpoll/modules/schedule/router"
	"slotpoll/modules/schedule/service"
)

func newTestServer(t *testing.T) (*echo.Echo, *repository.MemoryEventRepository) {
	t.Helper()
	e := echo.New()
	repo := repository.NewMemoryEventRepository()
	svc := service.NewScheduleService(repo, nil, service.NewEnumerator())
	r := router.NewScheduleRouter(controller.NewScheduleController(svc))
	r.Setup(e, middleware.NewMiddleware())
	return e, repo
}

func seedEvent(t *testing.T, repo *repository.MemoryEventRepository) {
	t.Helper()
	event := &eventEntity.Event{
		Code:      "ABC234",
		Name:      "Team sync",
		DateStart: "2026-03-10",
		DateEnd:   "2026-03-11",
		TimeStart: "09:00",
		TimeEnd:   "13:00",
	}
	event.UpsertParticipant(eventEntity.Participant{
		Name:         "Alice",
		AvatarColor:  "bg-blue-500",
		Availability: eventEntity.Availability{"2026-03-10": {"10:00"}},
	})
	event.UpsertParticipant(eventEntity.Participant{
		Name:         "Bob",
		AvatarColor:  "bg-teal-500",
		Availability: eventEntity.Availability{"2026-03-10": {"10:00"}},
	})
	_, err := repo.Create(context.Background(), event)
	require.NoError(t, err)
}

func doGet(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetDaySchedule_ReturnsAggregation(t *testing.T) {
	e, repo := newTestServer(t)
	seedEvent(t, repo)

	rec := doGet(e, "/api/v1/public/events/abc234/schedule?date=2026-03-10")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			Date              string   `json:"date"`
			Common            []string `json:"common"`
			TotalParticipants int      `json:"total_participants"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "2026-03-10", envelope.Data.Date)
	assert.Equal(t, []string{"10:00"}, envelope.Data.Common)
	assert.Equal(t, 2, envelope.Data.TotalParticipants)
}

func TestGetDaySchedule_DateOutsideRange(t *testing.T) {
	e, repo := newTestServer(t)
	seedEvent(t, repo)

	rec := doGet(e, "/api/v1/public/events/ABC234/schedule?date=2026-05-01")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDaySchedule_UnknownCode(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doGet(e, "/api/v1/public/events/NOPE22/schedule")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRecommendation_ReturnsBestDate(t *testing.T) {
	e, repo := newTestServer(t)
	seedEvent(t, repo)

	rec := doGet(e, "/api/v1/public/events/ABC234/recommendation")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			Recommendation *struct {
				Date         string   `json:"date"`
				Slots        []string `json:"slots"`
				AllAvailable bool     `json:"all_available"`
			} `json:"recommendation"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Data.Recommendation)
	assert.Equal(t, "2026-03-10", envelope.Data.Recommendation.Date)
	assert.Equal(t, []string{"10:00"}, envelope.Data.Recommendation.Slots)
	assert.True(t, envelope.Data.Recommendation.AllAvailable)
}

func TestGetRecommendation_UnknownCode(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doGet(e, "/api/v1/public/events/NOPE22/recommendation")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
