// Package service implements the business rules for MeepleHub: account
// lifecycle, game browsing, reviews, favorites, the general board, and
// per-game questions. Services validate input, enforce ownership, and
// return sentinel errors that handlers translate into response envelopes.
package service
