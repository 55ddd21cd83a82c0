package harvest

import "github.com/qepting91/complaint-harvester/internal/domain"

// Decision is the monitor's verdict after one pass.
type Decision struct {
	Stop   bool
	Reason domain.TerminationReason
}

// Monitor tracks card-count growth and decides when the loop ends.
// Without it a sparse or rate-limited feed would be polled forever.
type Monitor struct {
	threshold int
	maxItems  int

	previousVisible int
	noGrowthStreak  int
}

func NewMonitor(threshold, maxItems int) *Monitor {
	return &Monitor{threshold: threshold, maxItems: maxItems}
}

// Observe records the visible card count and the number of valid records collected so far.
func (m *Monitor) Observe(currentVisible, collected int) Decision {
	if currentVisible == m.previousVisible {
		m.noGrowthStreak++
	} else {
		m.noGrowthStreak = 0
		m.previousVisible = currentVisible
	}

	switch {
	case collected >= m.maxItems:
		return Decision{Stop: true, Reason: domain.TargetReached}
	case m.noGrowthStreak >= m.threshold:
		return Decision{Stop: true, Reason: domain.Stagnation}
	}
	return Decision{}
}

// Streak reports consecutive passes without growth.
func (m *Monitor) Streak() int { return m.noGrowthStreak }
