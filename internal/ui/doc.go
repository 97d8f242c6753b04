// Package ui drives the menu: it turns device input into navigation on the
// menu stack and materializes the stack as a Frame for a host to draw.
//
// Tick flow:
//   - A host collects one input.Batch per frame and calls Driver.Tick.
//   - The normalizer converts the batch into intents, which are applied to
//     the stack in arrival order. Select on an action item runs the owner's
//     handler through the command bus and the resulting event reaches the
//     host's sink.
//   - The redraw Coordinator decides whether anything changed. On redraw the
//     Renderer is cleared and handed a freshly built Frame.
//
// Pointer input works on the materialized Frame: Frame.Hit finds the button
// under the pointer and Driver.Interact applies hover, unhover and press.
// Pressing an item on an ancestor column truncates the stack to that screen
// before selecting it.
//
// Hosts:
//   - Model is the Bubble Tea host. Update routes each tea.Msg through a
//     typed handler registry; keys map through bubbles key bindings and
//     printable runes jump to the best matching label.
//   - The window subpackage hosts the same Driver in an ebiten game loop.
package ui
