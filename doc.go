/*
Command easyforth: a small, line-oriented FORTH

easyforth reads one line at a time, and answers each with a response, much
like the console of a classic FORTH system:

	3 4 + .
	 7  ok

There are two things a line can do.  Most lines are run immediately: numbers
are pushed onto the stack, and words are looked up in the dictionary and run
right away, their output collected into the response.  A line that starts
with a colon instead begins a definition:

	: double dup + ;
	  ok
	4 double .
	 8  ok

A definition may span several lines; it is closed by the first line that
ends with a semicolon, and lines before that get an empty response.

Words in a definition are looked up when the definition is compiled, not when
it runs.  Defining a word again adds a new dictionary entry that hides the
old one from future lookups, but any word compiled earlier still calls the
word it was compiled against.

Definitions may use if, else, and then.  The if pops a flag: any non-zero
value runs the words up to else (or then), zero runs the words after else.
Conditionals nest; the untaken side of a branch never touches the stack, not
even for the flags of any conditionals nested inside it.

	: sign dup 0 < if drop ." negative" else 0 > if ." positive" else ." zero" then then ;

Comparisons push -1 for true and 0 for false.  Division and modulo round
toward negative infinity.  Comments are written ( like this ), and ." text"
outputs text when run inside a definition.

The builtin words are:

	.  .s  +  *  /  /mod  mod  =  <  >  emit
	swap  dup  over  rot  drop  if  else  then
	cr  space  spaces

Flags:

	-trace     log each line, compiled action, and replayed action to stderr
	-dump      dump the stack and dictionary on exit
	-timeout   stop reading input after a time limit
	-history   line editor history file, used when stdin is a terminal
	-tee       copy all output to a transcript file

When stdin is not a terminal, each input line is echoed before its response.
*/
package main
