/*
Package runner implements the interactive loop around the solitaire engine.

It acts as the bridge between the engine and the outside world: it reads
command lines through a pluggable IOHandler, executes them, and writes back
the resulting messages and the board.

# Key Components

  - Runner: reads, executes and prints until the player quits or input ends.
  - IOHandler: decouples how lines are read and messages are written.
  - TextHandler: prompt-based handler for terminals and script files.
  - JSONHandler: JSON-Lines handler for programs driving the game.

# Usage

	eng, err := solitaire.New()
	if err != nil {
		log.Fatal(err)
	}

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithBoardRenderer(board.Render),
	)

	if err := r.Run(ctx, eng); err != nil {
		log.Fatal(err)
	}
*/
package runner
