// Package domain contains the core study entities: cards, decks, and the
// feedback values produced when a guess is judged. It is independent of any
// delivery mechanism or storage.
package domain
