// Package vnspell provides a context-aware spelling corrector for
// Vietnamese text.
//
// # Overview
//
// The corrector learns token bigram frequencies from a plain-text corpus
// (Learner, fed through Build) or from a previously persisted frequency
// file (Load), producing an immutable Index. A Corrector then walks input
// line by line: it segments each run of tokenizable words against a
// phrase wordlist, and for every word the wordlist does not already
// recognize as part of a multi-word phrase, it looks for a better-fitting
// replacement among the tokens observed next to its left and right
// neighbours in training, gated by a restricted Damerau-Levenshtein edit
// distance so corrections stay close to what was actually typed.
//
// # Pipeline
//
//	corpus   --Learner.Feed-->  BigramTable
//	BigramTable, Wordlist --Build--> *Index
//	frequency file, wordlist file --Load--> *Index
//	*Index, Config --NewCorrector--> *Corrector
//	*Corrector.Correct(input) --> corrected output
//
// # Vietnamese text handling
//
// Vietnamese is treated as precomposed NFC UTF-8 throughout: case folding
// and capitalization operate on the fixed byte-level relationships of the
// three Unicode blocks that cover Vietnamese's accented letters, rather
// than going through general Unicode case folding (see charset.go).
//
// # Non-goals
//
// vnspell does not perform tone-mark insertion (telex/VNI input method
// emulation), grammar checking, or any correction of tokens that are not
// already made of letters (numbers, URLs, and punctuation-only tokens
// pass through untouched).
package vnspell
