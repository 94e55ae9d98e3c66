// Package match judges a typed guess against a card's stored answer.
//
// Matching is deliberately loose: both strings are normalized (lowercased,
// punctuation stripped, trimmed) and a guess is accepted when it equals the
// answer or when either one contains the other. This is substring matching,
// not semantic comparison.
package match
