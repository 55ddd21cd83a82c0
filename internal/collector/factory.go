package collector

import (
	"fmt"

	"github.com/qepting91/complaint-harvester/internal/domain"
)

// Options selects and configures a provider.
type Options struct {
	Mode         string
	CardSelector string
	Headful      bool
	FixturePath  string
}

// NewProvider selects the correct implementation based on the mode.
// Each call returns a fresh provider; never share one between harvests.
func NewProvider(opts Options) (domain.PageStateProvider, error) {
	switch opts.Mode {
	case "", "live":
		if opts.CardSelector == "" {
			return nil, fmt.Errorf("card selector is required for live mode")
		}
		return NewRodProvider(opts.CardSelector, opts.Headful), nil
	case "fixture":
		if opts.FixturePath == "" {
			return nil, fmt.Errorf("FIXTURE_PATH is required for fixture mode")
		}
		sp, err := LoadFixture(opts.FixturePath)
		if err != nil {
			return nil, err
		}
		return sp, nil
	default:
		return nil, fmt.Errorf("unknown COLLECTOR_MODE: %s (use 'live' or 'fixture')", opts.Mode)
	}
}
