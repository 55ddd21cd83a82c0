package harvest_test

import (
	"testing"

	"github.com/qepting91/complaint-harvester/internal/domain"
	"github.com/qepting91/complaint-harvester/internal/harvest"
	"github.com/stretchr/testify/assert"
)

func TestMonitor_Observe(t *testing.T) {
	t.Parallel()

	type obs struct {
		visible, collected int
		want               harvest.Decision
	}
	cont := harvest.Decision{}
	stagnant := harvest.Decision{Stop: true, Reason: domain.Stagnation}
	reached := harvest.Decision{Stop: true, Reason: domain.TargetReached}

	tests := []struct {
		name string
		max  int
		seq  []obs
	}{
		{
			name: "three passes without growth stop",
			max:  10,
			seq: []obs{
				{visible: 2, collected: 2, want: cont},
				{visible: 2, collected: 2, want: cont},
				{visible: 2, collected: 2, want: cont},
				{visible: 2, collected: 2, want: stagnant},
			},
		},
		{
			name: "growth resets the streak",
			max:  10,
			seq: []obs{
				{visible: 3, collected: 3, want: cont},
				{visible: 3, collected: 3, want: cont},
				{visible: 3, collected: 3, want: cont},
				{visible: 4, collected: 4, want: cont},
				{visible: 4, collected: 4, want: cont},
				{visible: 4, collected: 4, want: cont},
				{visible: 4, collected: 4, want: stagnant},
			},
		},
		{
			name: "empty feed stagnates from the start",
			max:  10,
			seq: []obs{
				{visible: 0, collected: 0, want: cont},
				{visible: 0, collected: 0, want: cont},
				{visible: 0, collected: 0, want: stagnant},
			},
		},
		{
			name: "target wins regardless of growth",
			max:  5,
			seq: []obs{
				{visible: 8, collected: 5, want: reached},
			},
		},
		{
			name: "skipped cards do not count toward target",
			max:  5,
			seq: []obs{
				{visible: 6, collected: 4, want: cont},
				{visible: 7, collected: 5, want: reached},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := harvest.NewMonitor(3, tt.max)
			for i, o := range tt.seq {
				assert.Equal(t, o.want, m.Observe(o.visible, o.collected), "observation %d", i)
			}
		})
	}
}
