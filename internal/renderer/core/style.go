package core

import "strings"

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << iota
	AttrDim                     // Faint/dim text
	AttrItalic                  // Italic text
	AttrUnderline               // Underlined text
	AttrBlink                   // Blinking text (rarely supported)
	AttrReverse                 // Reverse video (swap fg/bg)
	AttrStrikethrough           // Strikethrough text
	AttrHidden                  // Hidden/invisible text
)

var attrNames = []struct {
	attr Attribute
	name string
}{
	{AttrBold, "bold"},
	{AttrDim, "dim"},
	{AttrItalic, "italic"},
	{AttrUnderline, "underline"},
	{AttrBlink, "blink"},
	{AttrReverse, "reverse"},
	{AttrStrikethrough, "strikethrough"},
	{AttrHidden, "hidden"},
}

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// String lists the set attributes joined by '|', or "none".
func (a Attribute) String() string {
	var parts []string
	for _, n := range attrNames {
		if a.Has(n.attr) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParseAttributes parses names such as "bold" or "bold|underline".
// Unknown names, and names marked for removal, are ignored.
func ParseAttributes(s string) Attribute {
	add, _ := ParseAttributeChanges(s)
	return add
}

// ParseAttributeChanges parses a list such as "bold|-reverse" into the
// attributes to add and, for names prefixed with '-', the attributes to
// remove. Unknown names are ignored.
func ParseAttributeChanges(s string) (add, remove Attribute) {
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' || r == ' ' }) {
		name, negated := strings.CutPrefix(part, "-")
		for _, n := range attrNames {
			if !strings.EqualFold(name, n.name) {
				continue
			}
			if negated {
				remove = remove.With(n.attr)
			} else {
				add = add.With(n.attr)
			}
		}
	}
	return add.Without(remove), remove
}

// Style represents the visual style of text.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
		Attributes: AttrNone,
	}
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{
		Foreground: fg,
		Background: ColorDefault,
		Attributes: AttrNone,
	}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// WithAttributes returns a new style with the given attributes.
func (s Style) WithAttributes(attrs Attribute) Style {
	s.Attributes = attrs
	return s
}

// Bold returns a new style with bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Reverse returns a new style with reverse video attribute added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Merge combines two styles.
// The other style takes precedence for non-default values.
// Attributes are OR'd together.
func (s Style) Merge(other Style) Style {
	result := s
	if !other.Foreground.IsDefault() {
		result.Foreground = other.Foreground
	}
	if !other.Background.IsDefault() {
		result.Background = other.Background
	}
	result.Attributes |= other.Attributes
	return result
}

// Patch is Merge followed by clearing the attributes in remove, so a patch
// can turn attributes off as well as on.
func (s Style) Patch(other Style, remove Attribute) Style {
	result := s.Merge(other)
	result.Attributes = result.Attributes.Without(remove)
	return result
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Attributes == other.Attributes
}

// IsDefault returns true if this is the default style.
func (s Style) IsDefault() bool {
	return s.Foreground.IsDefault() &&
		s.Background.IsDefault() &&
		s.Attributes == AttrNone
}
