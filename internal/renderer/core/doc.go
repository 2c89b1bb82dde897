// Package core provides the value types shared by every renderer package:
// colors, styles, cells and the rectangular regions drawing happens in.
//
// These types are plain values. None of them own or reference a drawing
// surface, so they can be copied freely between frames.
package core
