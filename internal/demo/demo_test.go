package demo

import (
	"testing"

	"github.com/dshills/tessera/internal/renderer/core"
	"github.com/dshills/tessera/internal/renderer/surface"
	"github.com/dshills/tessera/internal/widget"
)

func newBuf(width, height int) *surface.Buffer {
	return surface.New(core.NewRect(0, 0, width, height))
}

func assertLines(t *testing.T, buf *surface.Buffer, want ...string) {
	t.Helper()
	got := buf.Lines()
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d lines %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		split Split
		want  string
	}{
		{
			name:  "both children",
			split: Split{Left: widget.Maybe(widget.Text("Hi")), Right: widget.Text("World"), At: 5},
			want:  "Hi   World",
		},
		{
			name:  "absent left",
			split: Split{Right: widget.Text("World"), At: 5},
			want:  "     World",
		},
		{
			name:  "left clipped at boundary",
			split: Split{Left: widget.Maybe(widget.Text("Hello there")), Right: widget.Text("World"), At: 5},
			want:  "HelloWorld",
		},
		{
			name:  "nil right",
			split: Split{Left: widget.Maybe(widget.Text("Hi")), At: 5},
			want:  "Hi        ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newBuf(10, 1)
			tt.split.Render(buf.Area(), buf)
			assertLines(t, buf, tt.want)
		})
	}
}

func TestClear(t *testing.T) {
	buf := surface.WithLines("xxxx", "xxxx")
	Clear{}.Render(core.NewRect(1, 0, 2, 1), buf)
	assertLines(t, buf, "x  x", "xxxx")

	// Regions outside the surface are ignored.
	Clear{}.Render(core.NewRect(10, 10, 5, 5), buf)
	assertLines(t, buf, "x  x", "xxxx")
}

func TestBlock(t *testing.T) {
	buf := newBuf(5, 3)
	NewBlock("T").Render(buf.Area(), buf)
	assertLines(t, buf, "┌T──┐", "│   │", "└───┘")

	if !buf.Cell(1, 0).Style.Attributes.Has(core.AttrBold) {
		t.Error("title should be bold")
	}
}

func TestBlockTitleClipped(t *testing.T) {
	buf := newBuf(5, 3)
	NewBlock("Title").Render(buf.Area(), buf)
	assertLines(t, buf, "┌Tit┐", "│   │", "└───┘")
}

func TestBlockInner(t *testing.T) {
	area := core.NewRect(0, 0, 5, 3)
	tests := []struct {
		name  string
		block Block
		want  core.Rect
	}{
		{"bordered", NewBlock(""), core.NewRect(1, 1, 3, 1)},
		{"title only", Block{Title: "x", Style: core.DefaultStyle()}, core.NewRect(0, 1, 5, 2)},
		{"plain", Block{Style: core.DefaultStyle()}, area},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.block.Inner(area); got != tt.want {
				t.Errorf("Inner() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlockWithContent(t *testing.T) {
	buf := newBuf(7, 3)
	block := NewBlock("")
	block.Render(buf.Area(), buf)
	widget.Text("hello").Render(block.Inner(buf.Area()), buf)
	assertLines(t, buf, "┌─────┐", "│hello│", "└─────┘")
}

func TestCounter(t *testing.T) {
	c := &Counter{Label: "n="}
	buf := newBuf(10, 1)

	widget.MutRef(c).Render(buf.Area(), buf)
	assertLines(t, buf, "       n=1")

	c.RenderMut(buf.Area(), widget.NewContext(buf))
	assertLines(t, buf, "       n=2")

	if c.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", c.Frames())
	}
	if c.LastWidth() != 10 {
		t.Errorf("LastWidth() = %d, want 10", c.LastWidth())
	}
}

func TestStatusBar(t *testing.T) {
	buf := newBuf(30, 1)
	StatusBar{Mode: "LIST", Message: "hello", Current: 1, Total: 3}.Render(buf.Area(), buf)
	assertLines(t, buf, " LIST  hello          1/3 Top ")

	if got := buf.Cell(1, 0).Style; !got.Equals(modeStyle) {
		t.Errorf("mode style = %+v, want %+v", got, modeStyle)
	}
	if got := buf.Cell(15, 0).Style; !got.Equals(barStyle) {
		t.Errorf("bar style = %+v, want %+v", got, barStyle)
	}
}

func TestStatusBarErrorMessage(t *testing.T) {
	buf := newBuf(20, 1)
	StatusBar{Message: "boom", Kind: MessageError}.Render(buf.Area(), buf)
	assertLines(t, buf, "boom                ")

	style := buf.Cell(0, 0).Style
	if !style.Foreground.Equals(core.ColorRed) || !style.Attributes.Has(core.AttrBold) {
		t.Errorf("error style = %+v", style)
	}
}

func TestStatusBarPosition(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{0, 0, ""},
		{1, 1, "1/1 All"},
		{1, 3, "1/3 Top"},
		{3, 3, "3/3 Bot"},
		{2, 3, "2/3 50%"},
		{5, 10, "5/10 44%"},
		{0, 4, "1/4 Top"},
		{9, 4, "4/4 Bot"},
	}
	for _, tt := range tests {
		got := StatusBar{Current: tt.current, Total: tt.total}.position()
		if got != tt.want {
			t.Errorf("position(%d, %d) = %q, want %q", tt.current, tt.total, got, tt.want)
		}
	}
}
