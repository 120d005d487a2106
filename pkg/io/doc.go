// Package io reads and writes lists of anagrams.
//
// # Formats
//
// Two formats are supported:
//
//   - text: one anagram per line, in generation order
//   - json: a document with the input letters, counts and the anagrams
//
// The JSON document looks like:
//
//	{
//	  "letters": "abc",
//	  "count": 6,
//	  "total": 6,
//	  "truncated": false,
//	  "anagrams": ["abc", "bac", "cab", "acb", "bca", "cba"]
//	}
//
// count is the number of anagrams in the document; total is the number the
// letters have in all (n!). truncated is set when a limit cut the list short.
//
// # Round trips
//
// [Encode] and [Decode] convert a [Document] to bytes and back. The text
// format does not carry the letters or totals explicitly; [Decode] recovers
// them from the first line, which is always the input itself.
package io
