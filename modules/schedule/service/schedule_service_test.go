package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotpoll/core/errors"
	eventEntity "slotpoll/modules/event/entity"
	"slotpoll/modules/event/repository"
)

type fakeCache struct {
	store map[string]string
	gets  int
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]string{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.gets++
	return c.store[key], nil
}

func (c *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.sets++
	c.store[key] = value
	return nil
}

func seedEvent(t *testing.T, repo *repository.MemoryEventRepository, participants ...eventEntity.Participant) *eventEntity.Event {
	t.Helper()
	event := &eventEntity.Event{
		Code:      "ABC234",
		Name:      "Team sync",
		DateStart: "2026-03-10",
		DateEnd:   "2026-03-11",
		TimeStart: "09:00",
		TimeEnd:   "13:00",
	}
	for _, p := range participants {
		event.UpsertParticipant(p)
	}
	created, err := repo.Create(context.Background(), event)
	require.NoError(t, err)
	return created
}

func TestGetDaySchedule_DefaultsToRangeStart(t *testing.T) {
	repo := repository.NewMemoryEventRepository()
	seedEvent(t, repo,
		participant("Alice", map[string][]string{"2026-03-10": {"10:00"}}),
		participant("Bob", map[string][]string{"2026-03-10": {"10:00"}}),
	)
	svc := NewScheduleService(repo, nil, NewEnumerator())

	resp, appErr := svc.GetDaySchedule(context.Background(), "abc234", "")
	require.Nil(t, appErr)

	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00", "13:00"}, resp.Slots)
	assert.Equal(t, []string{"10:00"}, resp.Common)
	assert.Equal(t, 2, resp.TotalParticipants)
}

func TestGetDaySchedule_DateOutsideRange(t *testing.T) {
	repo := repository.NewMemoryEventRepository()
	seedEvent(t, repo)
	svc := NewScheduleService(repo, nil, NewEnumerator())

	_, appErr := svc.GetDaySchedule(context.Background(), "ABC234", "2026-05-01")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestGetDaySchedule_EventNotFound(t *testing.T) {
	repo := repository.NewMemoryEventRepository()
	svc := NewScheduleService(repo, nil, NewEnumerator())

	_, appErr := svc.GetDaySchedule(context.Background(), "NOPE22", "")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestGetDaySchedule_IncludesGapSuggestions(t *testing.T) {
	repo := repository.NewMemoryEventRepository()
	seedEvent(t, repo,
		participant("Alice", map[string][]string{"2026-03-10": {"10:00"}}),
		participant("Bob", map[string][]string{"2026-03-10": {"10:00"}}),
		participant("Carol", map[string][]string{"2026-03-10": {"11:00"}}),
	)
	svc := NewScheduleService(repo, nil, NewEnumerator())

	resp, appErr := svc.GetDaySchedule(context.Background(), "ABC234", "2026-03-10")
	require.Nil(t, appErr)

	// 10:00 has 2 of 3 and is the top popular slot; Carol misses it.
	require.Len(t, resp.Participants, 3)
	carol := resp.Participants[2]
	require.NotNil(t, carol.Suggestion)
	assert.Equal(t, "10:00", carol.Suggestion.Slot)
	assert.Equal(t, 2, carol.Suggestion.Count)

	// Alice can make the top popular slot already.
	assert.Nil(t, resp.Participants[0].Suggestion)
}

func TestGetRecommendation_ComputesAndCaches(t *testing.T) {
	repo := repository.NewMemoryEventRepository()
	seedEvent(t, repo,
		participant("Alice", map[string][]string{"2026-03-10": {"10:00"}}),
		participant("Bob", map[string][]string{"2026-03-10": {"10:00"}}),
	)
	cache := newFakeCache()
	svc := NewScheduleService(repo, cache, NewEnumerator())

	resp, appErr := svc.GetRecommendation(context.Background(), "ABC234")
	require.Nil(t, appErr)
	require.NotNil(t, resp.Recommendation)
	assert.Equal(t, "2026-03-10", resp.Recommendation.Date)
	assert.Equal(t, []string{"10:00"}, resp.Recommendation.Slots)
	assert.True(t, resp.Recommendation.AllAvailable)
	assert.Equal(t, 1, cache.sets)

	// Second read is served from cache, no new write.
	resp2, appErr := svc.GetRecommendation(context.Background(), "ABC234")
	require.Nil(t, appErr)
	assert.Equal(t, resp.Recommendation, resp2.Recommendation)
	assert.Equal(t, 1, cache.sets)
}

func TestGetRecommendation_NoSubmissions(t *testing.T) {
	repo := repository.NewMemoryEventRepository()
	seedEvent(t, repo)
	svc := NewScheduleService(repo, nil, NewEnumerator())

	resp, appErr := svc.GetRecommendation(context.Background(), "ABC234")
	require.Nil(t, appErr)
	assert.Nil(t, resp.Recommendation)
	assert.Zero(t, resp.TotalParticipants)
}

func TestRefreshRecommendation_WarmsCache(t *testing.T) {
	repo := repository.NewMemoryEventRepository()
	seedEvent(t, repo,
		participant("Alice", map[string][]string{"2026-03-11": {"12:00"}}),
	)
	cache := newFakeCache()
	svc := NewScheduleService(repo, cache, NewEnumerator())

	require.NoError(t, svc.RefreshRecommendation(context.Background(), "abc234"))
	assert.Equal(t, 1, cache.sets)

	// The warmed entry is used without recomputing a write.
	resp, appErr := svc.GetRecommendation(context.Background(), "ABC234")
	require.Nil(t, appErr)
	require.NotNil(t, resp.Recommendation)
	assert.Equal(t, 1, cache.sets)
}

func TestRefreshRecommendation_MissingEventIsNotAnError(t *testing.T) {
	repo := repository.NewMemoryEventRepository()
	svc := NewScheduleService(repo, newFakeCache(), NewEnumerator())

	assert.NoError(t, svc.RefreshRecommendation(context.Background(), "NOPE22"))
}
