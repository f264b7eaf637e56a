package hero

import (
	"time"
	"unicode/utf8"
)

// TypeInterval is the delay between revealed characters.
const TypeInterval = 100 * time.Millisecond

// Typewriter reveals Text one rune per Interval, then holds the full text.
type Typewriter struct {
	Text     string
	Interval time.Duration
}

func NewTypewriter(text string) Typewriter {
	return Typewriter{Text: text, Interval: TypeInterval}
}

func (tw Typewriter) visible(elapsed time.Duration) int {
	total := utf8.RuneCountInString(tw.Text)
	if tw.Interval <= 0 {
		return total
	}
	if elapsed < 0 {
		return 0
	}
	n := int(elapsed / tw.Interval)
	if n > total {
		n = total
	}
	return n
}

// At is the prefix shown after elapsed.
func (tw Typewriter) At(elapsed time.Duration) string {
	n := tw.visible(elapsed)
	i := 0
	for pos := range tw.Text {
		if i == n {
			return tw.Text[:pos]
		}
		i++
	}
	return tw.Text
}

// Done reports whether the full text is visible.
func (tw Typewriter) Done(elapsed time.Duration) bool {
	return tw.visible(elapsed) == utf8.RuneCountInString(tw.Text)
}
