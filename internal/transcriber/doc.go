// Package transcriber converts Standard English text into the PI phonemic
// notation. It applies a fixed set of preliminary function-word replacements,
// substitutes dictionary words with their variation-specific phonetic forms,
// and rewrites plural-style trailing-s words whose stem has a dictionary
// entry. It also provides the sentence and word segmentation used by the
// interactive review loop.
package transcriber
