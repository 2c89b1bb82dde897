package surface

import (
	"github.com/tidwall/sjson"
)

// MarshalJSON encodes a snapshot of the buffer: its area, its rows as
// text, and every cell whose style is not the default.
func (b *Buffer) MarshalJSON() ([]byte, error) {
	doc := []byte(`{}`)
	var err error
	set := func(path string, v any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, v)
	}

	set("area.x", b.area.X)
	set("area.y", b.area.Y)
	set("area.width", b.area.Width)
	set("area.height", b.area.Height)
	set("lines", b.Lines())
	set("cells", []any{})
	for y := b.area.Top(); y < b.area.Bottom(); y++ {
		for x := b.area.Left(); x < b.area.Right(); x++ {
			c := b.Cell(x, y)
			if c.Style.IsDefault() || c.IsContinuation() {
				continue
			}
			set("cells.-1", map[string]any{
				"x":      x,
				"y":      y,
				"symbol": c.Symbol,
				"fg":     c.Style.Foreground.String(),
				"bg":     c.Style.Background.String(),
				"attrs":  c.Style.Attributes.String(),
			})
		}
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}
