// Package widget defines how drawables paint themselves into a surface.
//
// A drawable is any value that implements one or more of the render
// capabilities below. There is no base type: a drawable is defined purely
// by the methods it has.
//
//	                 no state            external state
//	by value     Widget              StatefulWidget[S]
//	by reference Renderer            StatefulRenderer[S]
//	mutable ref  MutRenderer         -
//
// By-value rendering treats the drawable as a one-shot command: the caller
// builds it for the frame, hands it over, and does not use it again. By
// reference rendering leaves the drawable untouched so it can be stored,
// rendered again, composed into other drawables, or held behind the
// Renderer interface in a heterogeneous collection.
//
// Most drawables should implement Renderer only and get Widget for free:
// either wrap them with Ref, or add a one-line Render method that calls
// RenderWidget. Text, Line and Optional do the latter.
//
// Rendering never fails. Writes outside the surface are dropped by the
// surface itself, empty regions produce no output, and an absent Optional
// draws nothing.
//
// A Context is created for each reference render call and must not be
// retained after the call returns. The same holds for the surface and the
// region: drawables receive them, use them, and let go.
package widget
