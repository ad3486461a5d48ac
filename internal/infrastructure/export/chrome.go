package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const (
	defaultRenderTimeout  = 60 * time.Second
	defaultViewportWidth  = 1440
	defaultViewportHeight = 900

	a4WidthMM  = 210.0
	a4HeightMM = 297.0
	marginMM   = 12.0
)

// ChromeConfig contains configuration for the chromedp browser
type ChromeConfig struct {
	// RemoteURL is the websocket URL of a running Chrome. When empty a
	// local headless Chrome is launched.
	RemoteURL string
	// ExecPath overrides the Chrome binary used for local launches
	ExecPath string
	// NoSandbox runs Chrome without sandbox (required for Docker/root)
	NoSandbox bool
	// RenderTimeout bounds one print or capture session
	RenderTimeout time.Duration
	// MaxTabs bounds concurrently open tabs
	MaxTabs int
	Logger  *zap.Logger
}

// ChromeBrowser drives Chrome through the DevTools protocol
type ChromeBrowser struct {
	config      ChromeConfig
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
	tabs        chan struct{}
}

var _ Browser = (*ChromeBrowser)(nil)

// NewChromeBrowser prepares the allocator. Chrome itself starts lazily on
// the first print or capture.
func NewChromeBrowser(cfg ChromeConfig) *ChromeBrowser {
	if cfg.RenderTimeout == 0 {
		cfg.RenderTimeout = defaultRenderTimeout
	}
	if cfg.MaxTabs <= 0 {
		cfg.MaxTabs = 2
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	b := &ChromeBrowser{
		config: cfg,
		logger: logger,
		tabs:   make(chan struct{}, cfg.MaxTabs),
	}

	if cfg.RemoteURL != "" {
		b.allocCtx, b.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.RemoteURL)
		return b
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("font-render-hinting", "none"),
		chromedp.WindowSize(defaultViewportWidth, defaultViewportHeight),
	)
	if cfg.NoSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}
	b.allocCtx, b.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	return b
}

// session opens a tab bound to ctx and the render timeout. The returned
// release func must be called when done.
func (b *ChromeBrowser) session(ctx context.Context) (context.Context, func(), error) {
	select {
	case b.tabs <- struct{}{}:
	case <-ctx.Done():
		return nil, nil, NewRenderError(ErrCodeRenderTimeout, "waiting for a browser tab", ctx.Err())
	}

	tabCtx, tabCancel := chromedp.NewContext(b.allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			b.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	stop := context.AfterFunc(ctx, tabCancel)

	// the first Run allocates the tab and must not carry a deadline
	if err := chromedp.Run(tabCtx); err != nil {
		stop()
		tabCancel()
		<-b.tabs
		return nil, nil, NewRenderError(ErrCodeBrowser, "failed to start browser", err)
	}

	opCtx, opCancel := context.WithTimeout(tabCtx, b.config.RenderTimeout)
	release := func() {
		opCancel()
		stop()
		tabCancel()
		<-b.tabs
	}
	return opCtx, release, nil
}

// PrintToPDF prints html on A4 portrait with background graphics
func (b *ChromeBrowser) PrintToPDF(ctx context.Context, html string) ([]byte, error) {
	opCtx, release, err := b.session(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	start := time.Now()
	var pdf []byte
	err = chromedp.Run(opCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(mmToInches(a4WidthMM)).
				WithPaperHeight(mmToInches(a4HeightMM)).
				WithMarginTop(mmToInches(marginMM)).
				WithMarginRight(mmToInches(marginMM)).
				WithMarginBottom(mmToInches(marginMM)).
				WithMarginLeft(mmToInches(marginMM)).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return nil, b.wrap(opCtx, "PDF printing", err)
	}
	if len(pdf) == 0 {
		return nil, NewRenderError(ErrCodeRenderFailed, "generated PDF is empty", nil)
	}

	b.logger.Debug("PDF printed",
		zap.Int("bytes", len(pdf)),
		zap.Duration("duration", time.Since(start)),
	)
	return pdf, nil
}

// CaptureRegions screenshots each selector on pageURL. A selector that is
// not visible within regionTimeout is skipped; only a failure to load the
// page itself is an error.
func (b *ChromeBrowser) CaptureRegions(ctx context.Context, pageURL string, selectors []string, regionTimeout time.Duration) (map[string][]byte, error) {
	opCtx, release, err := b.session(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	err = chromedp.Run(opCtx,
		chromedp.EmulateViewport(defaultViewportWidth, defaultViewportHeight),
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	if err != nil {
		return nil, b.wrap(opCtx, "loading "+pageURL, err)
	}

	out := make(map[string][]byte, len(selectors))
	for _, sel := range selectors {
		regionCtx, cancel := context.WithTimeout(opCtx, regionTimeout)
		var buf []byte
		err := chromedp.Run(regionCtx,
			chromedp.WaitVisible(sel, chromedp.ByQuery),
			chromedp.ScrollIntoView(sel, chromedp.ByQuery),
			chromedp.Screenshot(sel, &buf, chromedp.NodeVisible, chromedp.ByQuery),
		)
		cancel()
		if err != nil {
			if opCtx.Err() != nil {
				return out, b.wrap(opCtx, "chart capture", err)
			}
			b.logger.Debug("Region not captured", zap.String("selector", sel), zap.Error(err))
			continue
		}
		out[sel] = buf
	}
	return out, nil
}

func (b *ChromeBrowser) wrap(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return NewRenderError(ErrCodeRenderTimeout,
			fmt.Sprintf("%s timed out after %v", op, b.config.RenderTimeout), err)
	case errors.Is(ctx.Err(), context.Canceled):
		return NewRenderError(ErrCodeRenderTimeout, op+" was cancelled", err)
	}
	b.logger.Error("chromedp execution failed", zap.String("operation", op), zap.Error(err))
	return NewRenderError(ErrCodeRenderFailed, op+" failed", err)
}

// Close shuts down the allocator and any Chrome it launched
func (b *ChromeBrowser) Close() error {
	if b.allocCancel != nil {
		b.allocCancel()
	}
	return nil
}

func mmToInches(mm float64) float64 {
	return mm / 25.4
}
