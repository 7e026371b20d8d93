// Package cli provides the interactive command-line client of the gown shop.
//
// NewApp wires configuration, the local session store, the API gateway and
// the REST services; App.Run starts a REPL that blocks until the user exits.
//
// Key features:
//   - Login by email or mobile number, signup, logout, status
//   - Browse products, categories, news, promotions and the about page
//   - Manage the cart and check out over WhatsApp
//   - Admin reports: orders, dashboard, users
//
// See App and runREPL for details.
package cli
