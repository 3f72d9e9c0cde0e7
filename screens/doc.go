// Package screens contains the dialogs rendered on top of the demo menu.
//
// Allowed here:
// - dialog implementations addressed by namespace and key
// - dialog-specific presentation and key handling, answering through core.Slot
//
// Not allowed here:
// - app-wide routing tables and key registry ownership
// - direct stack mutation other than through the slot handed to a dialog
package screens
