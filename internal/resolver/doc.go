// Package resolver answers free-text questions about the switch inventory.
//
// A question goes through three independent resolvers (intent, filters and aggregation),
// each one a fixed table of keyword rules. The Executor applies the resulting filters to
// the store and computes the requested aggregates, and FormatReport renders the outcome.
// Resolver ties the pipeline together and routes the help and stats commands.
package resolver
