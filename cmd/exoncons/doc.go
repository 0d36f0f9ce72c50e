// 15 Oct 2026

/*
Exoncons builds a consensus sequence for each exon from a forward and
a reverse Sanger read.

The reverse read is reverse complemented and the two reads are aligned
locally, with affine gaps. Where the reads agree, the base is kept with
the better of the two qualities. Where they disagree, the base with the
higher quality wins. On a tie, the forward read wins. Where one read has
a gap, the other read's base is used. Only the overlap goes into the
consensus.

Reads come from ABIF trace files (.ab1, .abi), named by file, or fastq
files (.fastq, .fq), named by record. A name is split on underscores
and the last part like 3F or 12r gives the exon and direction.
Everything before it is the sample name. An exon with a missing or
doubled read, a broken read or no overlap is reported and skipped. The
others still get built.

Usage:
	exoncons [flags] indir outfile

The flags are:
	-c csvfile
		Write every consensus call with its source and read positions
	-s samfile
		Write the reverse reads mapped onto the forward reads
	-t nthread
		Number of threads. The default is one per cpu
	-v level
		Verbosity. 1 prints a line per exon, 2 also the alignments
	-n
		Change ambiguity codes to N rather than rejecting the read
	-T
		Print the run time
	-match, -mismatch, -open, -extend
		Scoring scheme. Defaults are 2, -1, -10 and -0.1

The exit status is 0 if at least one exon was built.
*/
package main
