/*
Package domain contains the types shared between the solitaire engine and
its hosts.

It is kept free of I/O: the engine reports what happened as an Outcome made
of Messages, and hosts decide how to print them.

# Key Entities

  - Message: a piece of output (info, error, help markdown, board, system).
  - Outcome: the result of one input line, including whether to redraw or quit.
  - LifecycleHooks: callbacks for deals, commands and wins, used by logging
    and metrics.
*/
package domain
