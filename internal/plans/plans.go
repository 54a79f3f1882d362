// Package plans holds the display model for the subscription-plan list: a
// three-state view model (loading, ready, failed) plus the loader that fills
// it from the service.
package plans

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/myrinnew/wpkit/internal/wpapi"
)

// Phase is the display state of the plan list. Exactly one phase holds at a
// time.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// FreePriceLabel is shown instead of a price for the no-cost tier.
const FreePriceLabel = "Free"

// Row is one displayable plan entry.
type Row struct {
	Plan  wpapi.Plan
	Price string
}

// State is an immutable snapshot of the plan list screen.
type State struct {
	phase      Phase
	siteID     int64
	activePlan int64
	rows       []Row
	message    string
}

// Loading returns the initial state.
func Loading() State {
	return State{phase: PhaseLoading}
}

// Ready returns a populated state for a site.
func Ready(siteID, activePlan int64, plans []wpapi.Plan) State {
	rows := make([]Row, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, Row{Plan: p, Price: priceLabel(p)})
	}
	return State{
		phase:      PhaseReady,
		siteID:     siteID,
		activePlan: activePlan,
		rows:       rows,
	}
}

// Failed returns an error state carrying a display message.
func Failed(message string) State {
	return State{phase: PhaseFailed, message: message}
}

func priceLabel(p wpapi.Plan) string {
	if p.IsFree() || p.Price == "" {
		return FreePriceLabel
	}
	return p.Price
}

// Phase reports which state the list is in.
func (s State) Phase() Phase { return s.phase }

// SiteID is the site the plans belong to. Zero unless Ready.
func (s State) SiteID() int64 { return s.siteID }

// Rows returns the displayable plan rows. Empty unless Ready.
func (s State) Rows() []Row { return s.rows }

// IsActive reports whether the row's plan is the site's current plan.
func (s State) IsActive(r Row) bool {
	return s.phase == PhaseReady && r.Plan.ID == s.activePlan
}

// Message is the display error. Empty unless Failed.
func (s State) Message() string { return s.message }

// planService is the slice of the API client the loader needs.
type planService interface {
	Plans(ctx context.Context, siteID int64) ([]wpapi.Plan, int64, error)
}

// Loader fetches plans and reduces the outcome to a State.
type Loader struct {
	svc    planService
	siteID int64
	log    *slog.Logger
}

// NewLoader returns a loader for one site.
func NewLoader(svc planService, siteID int64, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{svc: svc, siteID: siteID, log: log}
}

// Load fetches the site's plans. Service failures become a Failed state, not
// an error: the screen always has exactly one state to show.
func (l *Loader) Load(ctx context.Context) State {
	plans, active, err := l.svc.Plans(ctx, l.siteID)
	if err != nil {
		l.log.Error("plan fetch failed", "site", l.siteID, "err", err)
		return Failed(fmt.Sprintf("Couldn't load plans: %v", err))
	}
	return Ready(l.siteID, active, plans)
}
