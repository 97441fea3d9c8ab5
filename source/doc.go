// Package source turns command-line file arguments into a lazy stream of
// text lines.
//
// Files are opened one at a time, in argument order, only when the previous
// one is exhausted. Compressed inputs are decoded transparently by file
// extension:
//
//	.gz   gzip  (klauspost/compress)
//	.bz2  bzip2
//	.zst  zstd  (klauspost/compress)
//
// No names, or the name "-", read standard input. Standard input is never
// closed by this package.
package source
