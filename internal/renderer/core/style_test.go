package core

import "testing"

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if !s.IsDefault() {
		t.Error("DefaultStyle should be default")
	}
	if s.Bold().IsDefault() {
		t.Error("bold style should not be default")
	}
}

func TestStyleMerge(t *testing.T) {
	base := NewStyle(ColorRed).Bold()
	over := DefaultStyle().WithBackground(ColorBlue).WithAttributes(AttrUnderline)

	got := base.Merge(over)
	if !got.Foreground.Equals(ColorRed) {
		t.Errorf("Foreground = %v, want red", got.Foreground)
	}
	if !got.Background.Equals(ColorBlue) {
		t.Errorf("Background = %v, want blue", got.Background)
	}
	if !got.Attributes.Has(AttrBold) || !got.Attributes.Has(AttrUnderline) {
		t.Errorf("Attributes = %v, want bold|underline", got.Attributes)
	}
}

func TestAttributeString(t *testing.T) {
	tests := []struct {
		attr Attribute
		want string
	}{
		{AttrNone, "none"},
		{AttrBold, "bold"},
		{AttrBold | AttrReverse, "bold|reverse"},
	}
	for _, tt := range tests {
		if got := tt.attr.String(); got != tt.want {
			t.Errorf("Attribute(%d).String() = %q, want %q", tt.attr, got, tt.want)
		}
	}
}

func TestParseAttributes(t *testing.T) {
	got := ParseAttributes("Bold|underline, bogus")
	if got != AttrBold|AttrUnderline {
		t.Errorf("ParseAttributes = %v, want bold|underline", got)
	}
	if got.Without(AttrBold) != AttrUnderline {
		t.Error("Without should remove bold")
	}
}

func TestParseAttributeChanges(t *testing.T) {
	tests := []struct {
		input       string
		add, remove Attribute
	}{
		{"bold", AttrBold, AttrNone},
		{"-bold", AttrNone, AttrBold},
		{"underline|-Reverse", AttrUnderline, AttrReverse},
		{"bold,-bold", AttrNone, AttrBold},
		{"-bogus", AttrNone, AttrNone},
	}
	for _, tt := range tests {
		add, remove := ParseAttributeChanges(tt.input)
		if add != tt.add || remove != tt.remove {
			t.Errorf("ParseAttributeChanges(%q) = %v, %v, want %v, %v", tt.input, add, remove, tt.add, tt.remove)
		}
	}
	if got := ParseAttributes("italic|-bold"); got != AttrItalic {
		t.Errorf("ParseAttributes ignores removals, got %v", got)
	}
}

func TestStylePatch(t *testing.T) {
	base := DefaultStyle().WithForeground(ColorRed).WithAttributes(AttrBold | AttrReverse)
	got := base.Patch(DefaultStyle().WithBackground(ColorBlue).WithAttributes(AttrItalic), AttrReverse)

	if !got.Foreground.Equals(ColorRed) || !got.Background.Equals(ColorBlue) {
		t.Errorf("Patch colors = %v/%v, want red on blue", got.Foreground, got.Background)
	}
	if got.Attributes != AttrBold|AttrItalic {
		t.Errorf("Patch attributes = %v, want bold|italic", got.Attributes)
	}
	if !base.Patch(DefaultStyle(), AttrNone).Equals(base) {
		t.Error("an empty patch should leave the style unchanged")
	}
}
