// Package index implements the inverted token index over a record
// collection snapshot.
//
// # Structure
//
// For each indexed field (title, author, publisher, category, tags, isbn,
// status) the index maps normalized tokens to roaring postings bitmaps of
// record positions. Bitmap iteration yields ascending positions, so
// postings materialize in original collection order without extra sorting.
//
// # Indexing Rules
//
//   - Text fields are tokenized; every token points at the record.
//   - Tags are atomic: each tag is one normalized token, never split.
//   - ISBN and status are single normalized tokens.
//   - A record missing a field is silently skipped for that field.
//
// # Querying
//
// MatchSubstring scans a field's vocabulary and unions the postings of
// every token containing the needle. This is exact for needles that
// contain no separator characters and do not fall inside a stop word;
// callers route other needles to a direct record scan.
//
// # Lifecycle
//
// Build runs once at engine construction. There is no incremental
// re-indexing; the index is valid only for the snapshot it was built from.
package index
