package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slotpoll/core/logger"
	"slotpoll/modules/schedule/service"

	"github.com/hibiken/asynq"
)

// TypeScheduleRefresh recomputes and caches an event's recommendation
// after a submission changed it.
const TypeScheduleRefresh = "schedule:refresh"

// RefreshPayload is the task payload for TypeScheduleRefresh
type RefreshPayload struct {
	Code string `json:"code"`
}

// Enqueuer submits schedule tasks to the queue
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// EnqueueRefresh schedules a recommendation recompute for the event
func (q *Enqueuer) EnqueueRefresh(ctx context.Context, code string) error {
	payload, err := json.Marshal(RefreshPayload{Code: code})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeScheduleRefresh, payload)
	_, err = q.client.EnqueueContext(ctx, task,
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	return err
}

// Handler processes schedule tasks
type Handler struct {
	svc service.ScheduleServiceInterface
}

func NewHandler(svc service.ScheduleServiceInterface) *Handler {
	return &Handler{svc: svc}
}

// Register wires the handler into the asynq mux
func (h *Handler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeScheduleRefresh, h.HandleRefresh)
}

// HandleRefresh recomputes the recommendation for one event
func (h *Handler) HandleRefresh(ctx context.Context, t *asynq.Task) error {
	var payload RefreshPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", TypeScheduleRefresh, err)
	}

	if err := h.svc.RefreshRecommendation(ctx, payload.Code); err != nil {
		logger.Error("ScheduleWorker:HandleRefresh", "code", payload.Code, "error", err)
		return err
	}
	return nil
}
