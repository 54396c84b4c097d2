// Package game implements the buzzword bingo engine: a per-session state
// machine covering player setup, the 3x3 word board, scoring, and the win
// report.
//
// The engine is driven by a strictly sequential stream of tool calls from a
// conversational voice agent. It never parses natural language and never
// narrates; adjudication of whether a word was used "in conversation" happens
// upstream, and the engine only applies the result.
//
// # Lifecycle
//
// A session moves through four phases:
//
//	SETUP -> WORD_SELECTION -> PLAYING -> COMPLETE -> (StartOver) -> SETUP
//
// Every operation declares its valid phase and fails with ErrInvalidPhase
// outside it. Phases are never skipped; DrawBoard passes through
// WORD_SELECTION and lands in PLAYING once the board is ready.
//
// # Usage
//
//	pool, err := game.LoadPool("words.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sess := game.NewSession(pool)
//	alice, _ := sess.AddPlayer("Alice", "Initech")
//	bob, _ := sess.AddPlayer("Bob", "Globex")
//
//	if err := sess.DrawBoard(); err != nil {
//	    log.Fatal(err)
//	}
//
//	out, _ := sess.WordSpoken(alice, "synergy", true)
//	if out.Report != nil {
//	    // game over, narrate out.Report.Winners
//	}
//	_ = bob
//
// Concurrent sessions are isolated: they share only the read-only Pool. Use
// Manager to track multiple simultaneous games.
package game
