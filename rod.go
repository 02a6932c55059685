package md2slides

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-md2slides/internal/process"
)

// A4 dimensions in inches. Chrome swaps them when Landscape is set.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// requestIdleWindow is how long the network must stay quiet before the
// document counts as settled.
const requestIdleWindow = 500 * time.Millisecond

// chromeSelectors are the interactive elements hidden before printing.
// Selectors absent from the document match nothing.
const chromeSelectors = ".nav-btn, .next-btn, .prev-btn, .slide-counter, .fullscreen-btn, .controls-hint, .progress-bar"

const countSlidesJS = `() => document.querySelectorAll('.slide').length`

const activateSlideJS = `(index, selectors) => {
	document.querySelectorAll('.slide').forEach((slide, i) => {
		slide.classList.toggle('active', i === index);
	});
	document.querySelectorAll(selectors).forEach((el) => {
		el.style.display = 'none';
	});
}`

// rodRenderer implements pageRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	cfg      exporterConfig
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

func newRodRenderer(cfg exporterConfig) *rodRenderer {
	return &rodRenderer{cfg: cfg}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser(ctx context.Context) error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New().Context(ctx)

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		r.killLauncher()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.browser = browser
	return nil
}

// Open creates a page sized to the viewport, loads url and waits for the
// load event and network idle. Returns the number of .slide elements.
func (r *rodRenderer) Open(ctx context.Context, url string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := r.ensureBrowser(ctx); err != nil {
		return 0, err
	}
	r.closePage()

	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	r.page = page

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             r.cfg.viewportWidth,
		Height:            r.cfg.viewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		return 0, fmt.Errorf("%w: setting viewport: %v", ErrPageCreate, err)
	}

	loading := page.Context(ctx).Timeout(r.cfg.timeout)
	waitIdle := loading.WaitRequestIdle(requestIdleWindow, nil, nil, nil)
	if err := loading.Navigate(url); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := loading.WaitLoad(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	waitIdle()
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	res, err := page.Context(ctx).Eval(countSlidesJS)
	if err != nil {
		return 0, fmt.Errorf("%w: counting slides: %v", ErrPageLoad, err)
	}
	return res.Value.Int(), nil
}

// RenderSlide makes slide index the only active one, hides the chrome,
// waits for the transition and prints one landscape A4 page.
func (r *rodRenderer) RenderSlide(ctx context.Context, index int, outPath string) error {
	if r.page == nil {
		return fmt.Errorf("%w: no page open", ErrSlideActivate)
	}
	page := r.page.Context(ctx)

	if _, err := page.Eval(activateSlideJS, index, chromeSelectors); err != nil {
		return fmt.Errorf("%w: slide %d: %v", ErrSlideActivate, index, err)
	}

	if err := sleep(ctx, r.cfg.settleDelay); err != nil {
		return err
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		Landscape:       true,
		PaperWidth:      floatPtr(a4WidthInches),
		PaperHeight:     floatPtr(a4HeightInches),
		MarginTop:       floatPtr(0),
		MarginBottom:    floatPtr(0),
		MarginLeft:      floatPtr(0),
		MarginRight:     floatPtr(0),
		PrintBackground: true,
	})
	if err != nil {
		return fmt.Errorf("%w: slide %d: %v", ErrPDFGeneration, index, err)
	}

	return writeStream(outPath, reader)
}

// writeStream copies a PDF stream into a new file at path.
func writeStream(path string, src io.Reader) error {
	f, err := os.Create(path) // #nosec G304 -- path built from a private temp dir
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	if _, err := io.Copy(f, src); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *rodRenderer) closePage() {
	if r.page != nil {
		_ = r.page.Close()
		r.page = nil
	}
}

// killLauncher kills the browser process tree and removes its profile.
func (r *rodRenderer) killLauncher() {
	if r.launcher == nil {
		return
	}
	if pid := r.launcher.PID(); pid > 0 {
		process.KillProcessGroup(pid)
	}
	r.launcher.Kill()
	r.launcher.Cleanup()
	r.launcher = nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	r.closePage()
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.killLauncher()
	return err
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
