// Package analysis turns raw text into canonical tokens.
//
// # Normalization
//
// Normalize trims, applies Unicode NFC composition, folds typographic
// quotes and dash variants to ASCII, and case-folds unless configured
// case sensitive. The same transform is applied to indexed field text and
// to incoming queries, so containment tests on either side agree.
//
// # Tokenization
//
// Tokenize splits normalized text on Unicode whitespace plus a configured
// separator set covering Western and CJK punctuation, then drops empty
// tokens and stop words. Tag values are not tokenized by callers; each tag
// is already an atomic unit and is only normalized.
//
// # Configuration
//
// Stop words and separators are plain data injected through Config, not
// package-level constants, so locales can be swapped per engine instance:
//
//	a := analysis.New(analysis.Config{})
//	a.Tokenize("The Left Hand of Darkness") // [left hand darkness]
package analysis
