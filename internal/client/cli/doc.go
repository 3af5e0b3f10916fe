// Package cli provides the interactive portal client.
//
// The terminal plays the role of the browser tab: it holds the current page,
// shows alerts and confirmations, and turns typed commands into clicks on
// the header. Typical flow: open the stored session (or the login page),
// log in, open a header-bearing page, click through its menus, log out.
//
// Commands:
//   - login / logout
//   - open <page>
//   - header [--html]
//   - click <target|#element-id>
//   - whoami
//   - apibase [url]
//   - storage / reset
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
