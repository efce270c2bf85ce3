package gui

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rivo/uniseg"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// truncateCacheSize bounds the truncation cache. A table redraws the same
// cells every frame, so a few thousand entries cover a screenful of rows
// across resizes.
const truncateCacheSize = 4096

type truncateKey struct {
	text     string
	maxWidth float32
	scale    float32
	cellW    float32
	font     uint32 // texture of the active font, 0 for the built-in one
}

// truncateCache outlives frames, unlike the per-frame measure cache:
// truncation costs a measurement per grapheme.
var truncateCache, _ = lru.New[truncateKey, string](truncateCacheSize)

// TruncateText shortens text to fit maxWidth, ending it with Ellipsis.
// Text that already fits is returned unchanged. Cuts fall on grapheme
// cluster boundaries, so combining marks and emoji sequences stay whole.
// If not even the ellipsis fits, the result is empty.
func TruncateText(ctx *Context, text string, maxWidth float32) string {
	if text == "" || ctx.MeasureText(text).X <= maxWidth {
		return text
	}

	key := truncateKey{
		text:     text,
		maxWidth: maxWidth,
		scale:    ctx.style.FontScale,
		cellW:    ctx.style.CharWidth,
	}
	if f := ctx.activeFont(); f != nil {
		key.font = f.TextureID()
	}
	if s, ok := truncateCache.Get(key); ok {
		return s
	}

	result := truncateGraphemes(ctx, text, maxWidth)
	truncateCache.Add(key, result)
	return result
}

func truncateGraphemes(ctx *Context, text string, maxWidth float32) string {
	budget := maxWidth - ctx.MeasureText(Ellipsis).X
	if budget < 0 {
		return ""
	}

	var b strings.Builder
	fit := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		b.WriteString(g.Str())
		if ctx.MeasureText(b.String()).X > budget {
			break
		}
		fit = b.Len()
	}
	return strings.TrimRight(text[:fit], " ") + Ellipsis
}

// TextTruncated draws text cut to fit maxWidth (0 = layout width).
func (ctx *Context) TextTruncated(text string, maxWidth float32) {
	if maxWidth <= 0 {
		maxWidth = ctx.currentLayoutWidth()
	}
	shown := TruncateText(ctx, text, maxWidth)
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, shown, ctx.style.TextColor)
	size := ctx.MeasureText(shown)
	size.Y = ctx.lineHeight()
	ctx.AdvanceCursor(size)
}
