package engine

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"Folio3D/internal/behaviour"
	"Folio3D/internal/config"
	"Folio3D/internal/content"
	"Folio3D/internal/hero"
	"Folio3D/internal/input"
	"Folio3D/internal/logger"
	"Folio3D/internal/page"
	"Folio3D/internal/palette"
	"Folio3D/internal/particles"
	"Folio3D/internal/renderer"
	"Folio3D/internal/showcase"
)

// Canvas placements on the page.
var (
	// homeRegion is the area the hero pointer is measured against.
	homeRegion     = page.Canvas{Section: content.Home, Right: 1}
	heroCanvas     = page.Canvas{Section: content.Home, Height: 500, Center: true, Left: 0.5, Right: 1}
	showcaseCanvas = page.Canvas{Section: content.Projects, Inset: 150, Height: 500, Right: 1}
)

// heroRevealOptions springs the hero in from the right, as the model column
// beside the intro text.
func heroRevealOptions() page.Options {
	opts := page.SideOptions(false)
	opts.Delay = 500 * time.Millisecond
	opts.Spring = true
	return opts
}

// Folio hosts the page in a glfw window: it owns the renderer, the mounted
// scenes and the page state driven by input.
type Folio struct {
	Config config.Config
	Site   *content.Site
	Width  int32
	Height int32

	window   *glfw.Window
	rend     *renderer.OpenGLRenderer
	text     *renderer.TextRenderer
	rng      *rand.Rand
	start    float64
	quality  int
	showAll  bool
	title    string
	scrolled bool

	pointer  input.PointerState
	layout   *page.Layout
	tracker  *page.Tracker
	debounce page.Debouncer
	reveal   *page.Reveal

	backdrop      *Mount
	heroMount     *Mount
	showcaseMount *Mount
	hero          *hero.Hero
	showcase      *showcase.Showcase

	dragging         bool
	cursorX, cursorY float64

	siteUpdates chan *content.Site
	watcher     *content.Watcher
}

func NewFolio(cfg config.Config, site *content.Site) *Folio {
	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	f := &Folio{
		Config:      cfg,
		Site:        site,
		Width:       int32(cfg.Window.Width),
		Height:      int32(cfg.Window.Height),
		rng:         rand.New(rand.NewSource(seed)),
		tracker:     page.NewTracker(site.Sections, cfg.Page.LookAhead),
		debounce:    page.Debouncer{Wait: time.Duration(cfg.Page.DebounceMS) * time.Millisecond},
		siteUpdates: make(chan *content.Site, 1),
	}
	f.layout = page.NewLayout(site.Sections, cfg.Page.SectionHeights, float64(cfg.Window.Height))
	f.reveal = page.NewReveal(func(id string) {
		logger.Log.Debug("Revealed", zap.String("element", id))
	})
	f.observeHeadings(nil)
	for i, q := range config.QualityPresets {
		if q == cfg.Scene.Quality {
			f.quality = i
		}
	}
	return f
}

// Run opens the window and renders until it is closed or ctx is done.
func (f *Folio) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	rc, err := renderer.RenderConfigByName(f.Config.Scene.Quality)
	if err != nil {
		return err
	}
	// The window's msaa caps the preset.
	if f.Config.Window.MSAA < rc.MSAASamples {
		rc.MSAASamples = f.Config.Window.MSAA
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Samples, rc.MSAASamples)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	f.window, err = glfw.CreateWindow(int(f.Width), int(f.Height), f.Config.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("could not create glfw window: %w", err)
	}
	defer f.window.Destroy()
	f.window.MakeContextCurrent()
	if f.Config.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	SetDarkTitleBar(f.window, palette.Night)

	fbw, fbh := f.window.GetFramebufferSize()
	f.rend = renderer.NewOpenGLRenderer(rc)
	if err := f.rend.Init(ctx, int32(fbw), int32(fbh)); err != nil {
		return err
	}
	defer f.rend.Cleanup()

	if f.text, err = renderer.NewTextRenderer(); err != nil {
		return err
	}
	f.loadFonts()

	f.start = glfw.GetTime()
	if err := f.mountBackdrop(f.start); err != nil {
		return err
	}
	if err := f.mountSite(f.Site, f.start); err != nil {
		return err
	}
	defer f.unmountAll()

	f.registerCallbacks()
	defer f.unregisterCallbacks()

	if err := f.startWatcher(ctx); err != nil {
		logger.Log.Warn("Content watch disabled", zap.Error(err))
	}
	defer f.stopWatcher()
	defer f.reveal.Close()

	f.track()
	logger.Log.Info("Folio3D running",
		zap.String("owner", f.Site.Owner),
		zap.Int("projects", len(f.Site.Projects)),
		zap.Bool("moreProjects", content.HasMore(f.Site.Projects)),
		zap.String("quality", config.QualityPresets[f.quality]))

	f.renderLoop(ctx)
	return nil
}

func (f *Folio) renderLoop(ctx context.Context) {
	for !f.window.ShouldClose() {
		select {
		case <-ctx.Done():
			f.window.SetShouldClose(true)
			continue
		case site := <-f.siteUpdates:
			f.applySite(site)
		default:
		}

		now := glfw.GetTime()
		clock := f.clock(now)
		f.syncSize()

		if f.debounce.Ready(clock) {
			f.track()
		}
		f.reveal.Update(f.layout.View(), f.revealBounds(), clock)
		f.applyReveal(clock)

		frame := behaviour.Frame{Pointer: f.pointer.Snapshot()}
		for _, m := range f.mounts() {
			m.Update(now, frame)
		}

		f.draw(now)
		f.updateTitle(now)

		f.window.SwapBuffers()
		glfw.PollEvents()
	}
}

// clock is the host time since Run started.
func (f *Folio) clock(now float64) time.Duration {
	return time.Duration((now - f.start) * float64(time.Second))
}

func (f *Folio) mounts() []*Mount {
	out := make([]*Mount, 0, 3)
	for _, m := range []*Mount{f.backdrop, f.heroMount, f.showcaseMount} {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

func (f *Folio) loadFonts() {
	faces := []struct {
		face renderer.FontFace
		path string
	}{
		{renderer.FontFace{}, f.Config.Fonts.Regular},
		{renderer.FontFace{Bold: true}, f.Config.Fonts.Bold},
		{renderer.FontFace{Mono: true}, f.Config.Fonts.Mono},
		{renderer.FontFace{Bold: true, Mono: true}, f.Config.Fonts.MonoBold},
	}
	for _, ff := range faces {
		if ff.path == "" {
			continue
		}
		if err := f.text.LoadFont(ff.face, ff.path); err != nil {
			logger.Log.Warn("Font unavailable, using fallback", zap.String("path", ff.path), zap.Error(err))
		}
	}
}

func (f *Folio) mountBackdrop(now float64) error {
	if f.backdrop != nil {
		f.backdrop.release(f.rend)
		f.backdrop = nil
	}
	n := f.rend.Config.Particles(f.Config.Scene.ParticleCount)
	bd := particles.NewBackdrop(particles.NewField(n, f.rng))
	m, err := mount(f.rend, f.text, bd.Scene, f.Width, f.Height, now)
	if err != nil {
		return err
	}
	f.backdrop = m
	return nil
}

// mountSite builds the hero and showcase for site, replacing any mounted ones.
func (f *Folio) mountSite(site *content.Site, now float64) error {
	h := hero.Build(site, f.rng)
	hm, err := mount(f.rend, f.text, h.Scene, f.Width, f.Height, now)
	if err != nil {
		return err
	}
	sc := showcase.Build(content.SortFeaturedFirst(site.Projects), f.rng)
	sm, err := mount(f.rend, f.text, sc.Scene, f.Width, f.Height, now)
	if err != nil {
		hm.release(f.rend)
		return err
	}

	f.unmountSite()
	f.hero, f.heroMount = h, hm
	f.showcase, f.showcaseMount = sc, sm
	f.Site = site

	f.reveal.Observe("hero", heroRevealOptions())
	for i := range showcase.Slots {
		id := cardID(i)
		if i < len(sc.Cards) {
			f.reveal.Observe(id, page.CardOptions(i))
		} else {
			f.reveal.Unobserve(id)
		}
	}
	return nil
}

func (f *Folio) unmountSite() {
	if f.heroMount != nil {
		f.heroMount.release(f.rend)
		f.heroMount, f.hero = nil, nil
	}
	if f.showcaseMount != nil {
		f.showcaseMount.release(f.rend)
		f.showcaseMount, f.showcase = nil, nil
	}
	f.dragging = false
}

func (f *Folio) unmountAll() {
	f.unmountSite()
	if f.backdrop != nil {
		f.backdrop.release(f.rend)
		f.backdrop = nil
	}
}

// applySite swaps in reloaded content. On failure the current scenes stay.
func (f *Folio) applySite(site *content.Site) {
	prev := f.Site.Sections
	if err := f.mountSite(site, glfw.GetTime()); err != nil {
		logger.Log.Warn("Reloaded content not applied", zap.Error(err))
		return
	}
	if !sameSections(prev, site.Sections) {
		f.layout.Restack(site.Sections, f.Config.Page.SectionHeights)
		f.tracker.SetOrder(site.Sections)
		f.observeHeadings(prev)
		f.track()
		logger.Log.Info("Sections changed", zap.Int("sections", len(site.Sections)))
	}
	logger.Log.Info("Content reloaded", zap.String("owner", site.Owner), zap.Int("projects", len(site.Projects)))
}

// observeHeadings drops the headings of prev and observes those of the
// current layout. Headings present in both keep their latch.
func (f *Folio) observeHeadings(prev []content.SectionID) {
	for _, id := range prev {
		if _, ok := f.layout.Find(id); !ok {
			f.reveal.Unobserve(page.HeadingID(id))
		}
	}
	for _, s := range f.layout.Sections {
		f.reveal.Observe(page.HeadingID(s.ID), page.HeadingOptions())
	}
}

func sameSections(a, b []content.SectionID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (f *Folio) startWatcher(ctx context.Context) error {
	if !f.Config.Content.Watch || f.Config.Content.Path == "" {
		return nil
	}
	w, err := content.NewWatcher(f.Config.Content.Path, func(site *content.Site) {
		// Keep only the newest pending site.
		select {
		case <-f.siteUpdates:
		default:
		}
		f.siteUpdates <- site
	})
	if err != nil {
		return err
	}
	f.watcher = w
	go w.Run(ctx)
	logger.Log.Info("Watching content", zap.String("path", f.Config.Content.Path))
	return nil
}

func (f *Folio) stopWatcher() {
	if f.watcher == nil {
		return
	}
	if err := f.watcher.Close(); err != nil {
		logger.Log.Warn("Closing content watcher", zap.Error(err))
	}
	f.watcher = nil
}

// syncSize follows window and framebuffer resizes.
func (f *Folio) syncSize() {
	w, h := f.window.GetSize()
	if int32(w) == f.Width && int32(h) == f.Height {
		return
	}
	f.Width, f.Height = int32(w), int32(h)
	fbw, fbh := f.window.GetFramebufferSize()
	f.rend.UpdateViewport(int32(fbw), int32(fbh))
	f.layout.Viewport = float64(h)
	f.layout.ScrollTo(f.layout.ScrollY)
	f.debounce.Trigger(f.clock(glfw.GetTime()))
}

// track runs the debounced scroll handling.
func (f *Folio) track() {
	prev := f.tracker.Active()
	active := f.tracker.Update(f.layout.ScrollY, f.layout)
	if active != prev {
		logger.Log.Info("Active section", zap.String("section", string(active)))
	}
	if s := page.Scrolled(f.layout.ScrollY, f.Config.Page.ScrolledThreshold); s != f.scrolled {
		f.scrolled = s
		logger.Log.Debug("Navigation compact", zap.Bool("scrolled", s))
	}
}

func cardID(i int) string {
	return fmt.Sprintf("card:%d", i)
}

func (f *Folio) revealBounds() map[string]page.Span {
	bounds := f.layout.HeadingBounds()
	if span, ok := f.layout.CanvasSpan(heroCanvas); ok {
		bounds["hero"] = span
	}
	if span, ok := f.layout.CanvasSpan(showcaseCanvas); ok && f.showcase != nil {
		for i := range f.showcase.Cards {
			bounds[cardID(i)] = span
		}
	}
	return bounds
}

// applyReveal fades the hero and slides the cards into place.
func (f *Folio) applyReveal(clock time.Duration) {
	if f.hero != nil {
		alpha, off := f.reveal.Progress("hero", clock)
		f.heroMount.Fade(f.hero.Group, alpha)
		f.heroMount.Scale(f.hero.Group, 0.9+0.1*alpha)
		f.hero.Group.Transform.SetPosition(mgl32.Vec3{off.X() / 100, -off.Y() / 100, 0})
	}
	if f.showcase != nil {
		for i, c := range f.showcase.Cards {
			alpha, off := f.reveal.Progress(cardID(i), clock)
			f.showcaseMount.Fade(c.GetGameObject(), alpha)
			// Page pixels to world units; page y grows downward.
			c.Offset[0] = off.X() / 100
			c.Offset[1] = -off.Y() / 100
		}
	}
}

// viewport converts a window rect to framebuffer pixels, origin bottom-left.
func (f *Folio) viewport(r input.Rect) renderer.Viewport {
	fbw, fbh := f.window.GetFramebufferSize()
	sx := float64(fbw) / float64(f.Width)
	sy := float64(fbh) / float64(f.Height)
	return renderer.Viewport{
		X:      int32(r.Left * sx),
		Y:      int32((float64(f.Height) - r.Top - r.Height) * sy),
		Width:  int32(r.Width * sx),
		Height: int32(r.Height * sy),
	}
}

func (f *Folio) draw(now float64) {
	f.rend.BeginFrame()
	width := float64(f.Width)

	if m := f.backdrop; m != nil {
		full := f.viewport(input.Rect{Width: width, Height: float64(f.Height)})
		f.rend.Render(m.Camera, full, m.Models, m.Scene.Lighting, m.Elapsed(now))
	}

	if rect, ok := f.layout.CanvasRect(heroCanvas, width); ok && f.heroMount != nil {
		m := f.heroMount
		f.rend.Render(m.Camera, f.viewport(rect), m.Models, m.Scene.Lighting, m.Elapsed(now))
	}
	if rect, ok := f.layout.CanvasRect(showcaseCanvas, width); ok && f.showcaseMount != nil {
		m := f.showcaseMount
		f.rend.Render(m.Camera, f.viewport(rect), m.Models, m.Scene.Lighting, m.Elapsed(now))
	}
}

func (f *Folio) updateTitle(now float64) {
	active := f.tracker.Active()
	var detail string
	switch active {
	case content.Home:
		if f.heroMount != nil {
			elapsed := time.Duration(float64(f.heroMount.Elapsed(now)) * float64(time.Second))
			detail = f.hero.Typewriter.At(elapsed) + "|"
		}
	case content.Projects:
		sorted := content.SortFeaturedFirst(f.Site.Projects)
		detail = fmt.Sprintf("%d of %d projects", len(content.Visible(sorted, f.showAll)), len(sorted))
	}
	// The section label appears once its heading has been revealed.
	if !f.reveal.Revealed(page.HeadingID(active)) {
		active = ""
	}
	title := page.Title(f.Site.Owner, f.Site.Nav, active, detail)
	if title != f.title {
		f.title = title
		f.window.SetTitle(title)
	}
}

// cycleQuality switches to the next preset. MSAA keeps its start-up value.
func (f *Folio) cycleQuality() {
	f.quality = (f.quality + 1) % len(config.QualityPresets)
	name := config.QualityPresets[f.quality]
	rc, err := renderer.RenderConfigByName(name)
	if err != nil {
		logger.Log.Warn("Quality preset", zap.Error(err))
		return
	}
	rc.MSAASamples = f.rend.Config.MSAASamples
	f.rend.Config = rc
	if !rc.EnableDeformation {
		for _, m := range f.mounts() {
			m.Reset(f.rend)
		}
	}
	if err := f.mountBackdrop(glfw.GetTime()); err != nil {
		logger.Log.Error("Backdrop rebuild failed", zap.Error(err))
	}
	logger.Log.Info("Quality preset", zap.String("name", name))
}
