// Package widgets provides concrete views built on the view pipeline: Box stacks
// child views, Label draws a run of text and Image draws a texture.
package widgets
