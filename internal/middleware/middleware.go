// Package middleware holds the Echo middleware chain and the global error
// handler.
//
// Every request gets a request id, an optional New Relic transaction and a
// request-scoped zerolog logger. Writes on /companies and /invoices can be
// gated behind Clerk session tokens, and every error is rendered as an
// errs.HTTPError.
package middleware
