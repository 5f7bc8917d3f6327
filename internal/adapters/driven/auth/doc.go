// Package auth implements the TokenProvider port. The factory maps the
// configured authentication mode to a provider: mode None yields no
// provider at all, so a run makes zero identity calls and sends no
// Authorization header; mode Interactive yields a browser based sign-in
// against the configured identity tenant.
//
// Tokens are held in memory for the lifetime of the process and never
// persisted.
package auth
