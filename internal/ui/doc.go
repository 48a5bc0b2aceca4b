// Package ui is the showcase host for the interaction primitives.
//
// Core pieces:
//   - App: the root tea.Model; owns the page and one instance of each primitive
//   - DialogBody: the dialog's content, updated and rendered by App
//   - Layout: hit regions recorded while rendering, for pointer routing
//   - overlay: ANSI-aware compositing of the dialog and tooltip bubbles
//   - KeybindRegistry/KeyHandler: global bindings behind a leader key
//   - Button: presentation-only button variants and sizes
package ui
