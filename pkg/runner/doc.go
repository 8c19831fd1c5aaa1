/*
Package runner implements the interactive calculator session.

It is the bridge between a form.Form and the outside world: it renders the view once
at start-up, then reads one command at a time, applies it to the form and renders the
recomputed view. Each command completes a full recompute-and-render cycle before the
next one is read.

# Key Components

  - Runner: The loop that owns the form and dispatches commands.
  - IOHandler: Decouples how commands are read and views are written.
  - TextHandler: Line-based commands for terminal use ("hot 85", "mode ice").
  - JSONHandler: NDJSON in, NDJSON out, for scripting and other programs.

# Usage

	r := runner.NewRunner(
		runner.WithCalculator(tempera.New()),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
