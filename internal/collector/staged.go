package collector

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/qepting91/complaint-harvester/internal/domain"
	"github.com/titanous/json5"
)

// StagedProvider implements domain.PageStateProvider over predetermined card batches.
// Each Reveal exposes the next batch; once they run out the feed stops growing.
type StagedProvider struct {
	mu sync.Mutex

	batches  [][]string
	revealed int

	navigateErr  error
	hangNavigate bool
	cardsErr     error
	onReveal     func(n int)

	navigations []domain.Navigation
	reveals     int
	closeCalls  int
	releases    int
}

func NewStagedProvider(batches ...[]string) *StagedProvider {
	return &StagedProvider{batches: batches}
}

// FailNavigation makes Navigate return err.
func (sp *StagedProvider) FailNavigation(err error) *StagedProvider {
	sp.navigateErr = err
	return sp
}

// HangNavigation makes Navigate block until its context ends, like a page that never loads.
func (sp *StagedProvider) HangNavigation() *StagedProvider {
	sp.hangNavigate = true
	return sp
}

// FailCards makes every VisibleCards call return err.
func (sp *StagedProvider) FailCards(err error) *StagedProvider {
	sp.cardsErr = err
	return sp
}

// OnReveal calls fn after every Reveal with the number of reveals so far.
func (sp *StagedProvider) OnReveal(fn func(n int)) *StagedProvider {
	sp.onReveal = fn
	return sp
}

func (sp *StagedProvider) Navigate(ctx context.Context, nav domain.Navigation) error {
	sp.mu.Lock()
	sp.navigations = append(sp.navigations, nav)
	hang, err := sp.hangNavigate, sp.navigateErr
	sp.mu.Unlock()

	if hang {
		<-ctx.Done()
		return ctx.Err()
	}
	return err
}

func (sp *StagedProvider) Reveal(ctx context.Context) error {
	sp.mu.Lock()
	sp.reveals++
	if sp.revealed < len(sp.batches) {
		sp.revealed++
	}
	n, hook := sp.reveals, sp.onReveal
	sp.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	return nil
}

func (sp *StagedProvider) VisibleCards(ctx context.Context) ([]string, error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.cardsErr != nil {
		return nil, sp.cardsErr
	}
	var cards []string
	for _, b := range sp.batches[:sp.revealed] {
		cards = append(cards, b...)
	}
	return cards, nil
}

func (sp *StagedProvider) Close() error {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.closeCalls++
	if sp.closeCalls == 1 {
		sp.releases++
	}
	return nil
}

// Reveals is the number of Reveal calls so far.
func (sp *StagedProvider) Reveals() int {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.reveals
}

// CloseCalls is the number of Close calls so far.
func (sp *StagedProvider) CloseCalls() int {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.closeCalls
}

// Releases counts how many times resources were actually freed.
func (sp *StagedProvider) Releases() int {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.releases
}

// Navigations returns every navigation request received.
func (sp *StagedProvider) Navigations() []domain.Navigation {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return append([]domain.Navigation(nil), sp.navigations...)
}

type fixtureFile struct {
	Batches [][]string `json:"batches"`
}

// LoadFixture reads a json5 file of the form {batches: [["<article>..</article>", ...], ...]}.
func LoadFixture(path string) (*StagedProvider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fixtureFile
	if err := json5.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return NewStagedProvider(f.Batches...), nil
}
