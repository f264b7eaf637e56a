package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"Folio3D/internal/content"
	"Folio3D/internal/input"
	"Folio3D/internal/logger"
	"Folio3D/internal/renderer"
)

func (f *Folio) registerCallbacks() {
	f.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	f.window.SetCursorPosCallback(f.cursorCallback)
	f.window.SetScrollCallback(f.scrollCallback)
	f.window.SetMouseButtonCallback(f.mouseButtonCallback)
	f.window.SetKeyCallback(f.keyCallback)
}

func (f *Folio) unregisterCallbacks() {
	f.window.SetCursorPosCallback(nil)
	f.window.SetScrollCallback(nil)
	f.window.SetMouseButtonCallback(nil)
	f.window.SetKeyCallback(nil)
}

func (f *Folio) cursorCallback(_ *glfw.Window, xpos, ypos float64) {
	input.Guard("cursor", func() {
		dx, dy := xpos-f.cursorX, ypos-f.cursorY
		f.cursorX, f.cursorY = xpos, ypos

		width := float64(f.Width)
		home, _ := f.layout.CanvasRect(homeRegion, width)
		f.pointer.Set(input.Normalize(xpos, ypos, home))

		if f.showcase == nil {
			return
		}
		rect, visible := f.layout.CanvasRect(showcaseCanvas, width)
		if f.dragging && rect.Width > 0 && rect.Height > 0 {
			f.showcase.Controls.Drag(float32(dx/rect.Width), float32(dy/rect.Height))
		}
		if !visible || !rect.Contains(xpos, ypos) {
			f.showcase.Hover(nil)
			return
		}
		ray := renderer.ScreenToRay(f.showcaseMount.Camera,
			float32(xpos-rect.Left), float32(ypos-rect.Top), int(rect.Width), int(rect.Height))
		f.showcase.Hover(&ray)
	})
}

func (f *Folio) scrollCallback(_ *glfw.Window, _, yoff float64) {
	input.Guard("scroll", func() {
		f.scrollBy(-yoff * f.Config.Page.ScrollSpeed)
	})
}

func (f *Folio) scrollBy(dy float64) {
	f.layout.ScrollBy(dy)
	f.debounce.Trigger(f.clock(glfw.GetTime()))
}

func (f *Folio) scrollTo(y float64) {
	f.layout.ScrollTo(y)
	f.debounce.Trigger(f.clock(glfw.GetTime()))
}

func (f *Folio) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	input.Guard("mouse-button", func() {
		if button != glfw.MouseButtonLeft || f.showcase == nil {
			return
		}
		switch action {
		case glfw.Press:
			rect, visible := f.layout.CanvasRect(showcaseCanvas, float64(f.Width))
			if !visible || !rect.Contains(f.cursorX, f.cursorY) {
				return
			}
			f.dragging = true
			if c := f.showcase.Hovered(); c != nil {
				link := c.Project.Link
				if link == "" {
					link = c.Project.RepoURL
				}
				if link != "" {
					w.SetClipboardString(link)
				}
				logger.Log.Info("Project selected", zap.String("title", c.Project.Title), zap.String("link", link))
			}
		case glfw.Release:
			if f.dragging {
				f.dragging = false
				f.showcase.Controls.Release()
			}
		}
	})
}

// Sections reachable with the number keys, in page order.
var numberKeys = []glfw.Key{glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5}

func (f *Folio) keyCallback(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	input.Guard("key", func() {
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyHome:
			f.scrollTo(0)
		case glfw.KeyEnd:
			f.scrollTo(f.layout.MaxScroll())
		case glfw.KeyPageUp:
			f.scrollBy(-f.layout.Viewport)
		case glfw.KeyPageDown, glfw.KeySpace:
			f.scrollBy(f.layout.Viewport)
		case glfw.KeyUp:
			f.scrollBy(-f.Config.Page.ScrollSpeed)
		case glfw.KeyDown:
			f.scrollBy(f.Config.Page.ScrollSpeed)
		case glfw.KeyQ:
			if action == glfw.Press {
				f.cycleQuality()
			}
		case glfw.KeyA:
			if action == glfw.Press {
				f.showAll = !f.showAll
				f.logProjects()
			}
		case glfw.KeyV:
			if action == glfw.Press && f.Site.VideoURL != "" {
				w.SetClipboardString(f.Site.VideoURL)
				logger.Log.Info("Video link copied", zap.String("url", f.Site.VideoURL))
			}
		default:
			for i, k := range numberKeys {
				if key == k && i < len(f.Site.Sections) {
					f.jumpTo(f.Site.Sections[i])
				}
			}
		}
	})
}

// jumpTo scrolls the top of section id to the top of the window.
func (f *Folio) jumpTo(id content.SectionID) {
	sec, ok := f.layout.Find(id)
	if !ok {
		logger.Log.Warn("No geometry for section", zap.String("section", string(id)))
		return
	}
	f.scrollTo(sec.Top)
}

func (f *Folio) logProjects() {
	sorted := content.SortFeaturedFirst(f.Site.Projects)
	visible := content.Visible(sorted, f.showAll)
	titles := make([]string, 0, len(visible))
	for _, p := range visible {
		titles = append(titles, p.Title)
	}
	logger.Log.Info("Projects", zap.Strings("visible", titles), zap.Bool("showAll", f.showAll),
		zap.Bool("more", content.HasMore(sorted)))
}
