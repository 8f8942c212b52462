package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mhdasif123/SipandSnack/internal/clock"
	"github.com/mhdasif123/SipandSnack/internal/window"
)

// WindowEvaluator is the minimal interface needed to report window status.
type WindowEvaluator interface {
	Evaluate(now time.Time) window.Status
}

// HandleWindowStatus returns an HTTP handler clients poll to learn whether
// ordering is currently open.
func HandleWindowStatus(policy WindowEvaluator, clk clock.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := policy.Evaluate(clk.Now())
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(windowResponse{
			Open:    st.Open,
			Message: st.Message,
		})
	}
}

type windowResponse struct {
	Open    bool   `json:"open"`
	Message string `json:"message"`
}
