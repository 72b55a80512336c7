// Package huffman implements textual Huffman codes.  A Huffman code is built
// from the character frequencies of a text, and the text is encoded as a
// human-readable string of '0' and '1' characters.
//
// Decoding is independent of encoding: a Decoder works from a CodeTable
// alone, which may have been typed or pasted in by a user and need not be a
// valid prefix code.  Ambiguity is resolved by a greedy longest-match scan.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
