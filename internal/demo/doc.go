// Package demo contains drawables built on the widget contracts.
//
// They cover each rendering capability: Split and Block compose children
// by shared reference, List keeps its selection in external state, Counter
// mutates itself while rendering and Clear is a plain one-shot widget.
// cmd/tessera puts them together into a small interactive screen.
package demo
