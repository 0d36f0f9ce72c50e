// 31 July 2020

/*
Randreads makes random forward and reverse read pairs for testing
exoncons.
Usage:
	randreads [options] fname nexon length
will generate nexon pairs whose shared core is length bases long and
write them to fname as fastq. Use "-" for standard output.

Flags:
	-r
		random number seed
	-m
		mutation rate. Each base of the reverse read is changed with this probability
	-d
		delete one base from the middle of each reverse read
	-c
		sample name, used at the start of every read name

Reads are called sample_1F, sample_1R, sample_2F... The reverse
reads are written reverse complemented, as they come off the sequencer,
and both reads get random flanks of up to a quarter of the length.
The same seed always gives the same reads.
*/
package main
