package jobs

import (
	"net/http"

	"github.com/pricesense/backend/app/pricing"
	"github.com/pricesense/backend/pkg/httpx"
	"github.com/pricesense/backend/pkg/logx"
)

type Fetcher interface {
	FetchLatest() (pricing.Result, error)
}

type JobsHandler struct {
	fetcher Fetcher

	// run executes the fetch pass; swapped for a synchronous runner in
	// tests.
	run func(func())
}

func NewJobsHandler(f Fetcher) *JobsHandler {
	return &JobsHandler{
		fetcher: f,
		run:     func(fn func()) { go fn() },
	}
}

// HandleFetchLatest starts a fetch pass in the background and
// acknowledges immediately. Outcomes land in the log, not the response.
func (h *JobsHandler) HandleFetchLatest(w http.ResponseWriter, r *http.Request) {
	h.run(func() {
		result, err := h.fetcher.FetchLatest()
		if err != nil {
			logx.Error().Err(err).Msg("fetch-latest job failed")
			return
		}
		logx.Info().
			Int("processed", result.Processed).
			Int("updated", result.Updated).
			Int("alerts_created", result.AlertsCreated).
			Msg("fetch-latest job finished")
	})

	httpx.WriteJSON(w, http.StatusAccepted, map[string]string{
		"status": "accepted",
		"job":    "fetch-latest",
	})
}
