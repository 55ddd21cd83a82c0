package collector

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/qepting91/complaint-harvester/internal/domain"
)

const (
	scrollToBottomJS = `() => window.scrollTo(0, document.body.scrollHeight)`
	outerHTMLJS      = `(sel) => Array.from(document.querySelectorAll(sel)).map((el) => el.outerHTML)`
)

// RodProvider drives a dedicated Chromium process through go-rod.
// Every provider launches its own browser, so concurrent harvests share nothing.
type RodProvider struct {
	cardSelector string
	headful      bool

	launcher     *launcher.Launcher
	cancelLaunch context.CancelFunc
	launched     bool
	browser      *rod.Browser
	page         *rod.Page

	once     sync.Once
	closeErr error
}

func NewRodProvider(cardSelector string, headful bool) *RodProvider {
	return &RodProvider{cardSelector: cardSelector, headful: headful}
}

// Navigate launches the browser and opens nav.URL. ctx bounds the launch too, including a
// first-run browser download, but once Navigate returns the browser lives until Close.
func (rp *RodProvider) Navigate(ctx context.Context, nav domain.Navigation) error {
	launchCtx, cancelLaunch := context.WithCancel(context.Background())
	rp.cancelLaunch = cancelLaunch
	stop := context.AfterFunc(ctx, cancelLaunch)
	defer stop()

	rp.launcher = launcher.New().Context(launchCtx).Headless(!rp.headful)
	controlURL, err := rp.launcher.Launch()
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	rp.launched = true

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect browser: %w", err)
	}
	rp.browser = browser

	incognito, err := rp.browser.Incognito()
	if err != nil {
		return fmt.Errorf("open browser context: %w", err)
	}
	rp.page, err = incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}

	if err := rp.page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             nav.Viewport.Width,
		Height:            nav.Viewport.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return fmt.Errorf("set viewport: %w", err)
	}
	if err := rp.page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: nav.UserAgent}); err != nil {
		return fmt.Errorf("set user agent: %w", err)
	}

	page := rp.page.Context(ctx)
	if err := page.Navigate(nav.URL); err != nil {
		return err
	}
	if _, err := page.Element(nav.ReadySelector); err != nil {
		return fmt.Errorf("wait for %q: %w", nav.ReadySelector, err)
	}
	return nil
}

func (rp *RodProvider) Reveal(ctx context.Context) error {
	if rp.page == nil {
		return errors.New("page not open")
	}
	page := rp.page.Context(ctx)
	if _, err := page.Eval(scrollToBottomJS); err != nil {
		return fmt.Errorf("scroll: %w", err)
	}
	return page.KeyActions().Press(input.End).Do()
}

func (rp *RodProvider) VisibleCards(ctx context.Context) ([]string, error) {
	if rp.page == nil {
		return nil, errors.New("page not open")
	}
	res, err := rp.page.Context(ctx).Eval(outerHTMLJS, rp.cardSelector)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", rp.cardSelector, err)
	}

	items := res.Value.Arr()
	cards := make([]string, 0, len(items))
	for _, item := range items {
		cards = append(cards, item.Str())
	}
	return cards, nil
}

// Close tears down the page, the browser and its user-data directory.
func (rp *RodProvider) Close() error {
	rp.once.Do(func() {
		var errs []error
		if rp.browser != nil {
			errs = append(errs, rp.browser.Close())
		}
		// Cleanup waits for the process to exit, so it only runs after a successful launch.
		if rp.launched {
			rp.launcher.Kill()
			rp.launcher.Cleanup()
		}
		if rp.cancelLaunch != nil {
			rp.cancelLaunch()
		}
		rp.closeErr = errors.Join(errs...)
	})
	return rp.closeErr
}
