// Package wallets provides the types and the view logic behind the "Wallets"
// page of the wlt tool: a list of cryptocurrency holdings with a summary, and
// a detail view for one selected holding.
//
// The core functionalities include:
//   - Holdings: an ordered, read-only collection of positions with exact
//     decimal balances and fiat values (see Holding, Holdings and Sample).
//   - Navigation: a View owns a single nullable selection. Without a
//     selection it shows the list, with one it shows the Detail of the
//     matching holding, or nothing at all if the identifier is unknown.
//   - Copy feedback: a Detail copies its address through a Clipboard,
//     reports the outcome through a Notifier and keeps a "copied" flag up
//     for CopyFeedbackDuration after the most recent successful copy.
//
// Rendering lives in the renderer package; this package only holds the
// state the renderers read.
package wallets
