/*
Package command turns player input lines into typed commands.

A line is a single-character key followed by zero to two numeric arguments:

	N          new deal
	m          stock to waste
	w [C]      waste to foundation, or to column C
	t C [C2]   column C to foundation, or onto column C2
	f S C      foundation suit S back to column C
	u r h s    undo, replay, hint, solve
	?  q       help, quit

Arguments are typed 1-based and stored 0-based. Anything that does not fit
the grammar parses to ActionInvalid with an error describing why.
*/
package command
