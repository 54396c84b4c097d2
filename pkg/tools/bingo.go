package tools

import (
	"github.com/sam-s10s/bs-bingo/pkg/game"
)

// ForSession returns the five game tools bound to one session. This is the
// complete contract exposed to the conversational agent.
//
// Results deliberately exclude board word identities: the grid is disclosed
// on screen through the display channel, never through the agent's spoken
// output.
func ForSession(sess *game.Session) *Registry {
	r := NewRegistry()

	r.Register(Tool{
		Name:        "add_player",
		Description: "Add a player to the game during setup.",
		Parameters: objectSchema(map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "The first name of the player.",
			},
			"workplace": map[string]any{
				"type":        "string",
				"description": "Where the player works. Shown on screen only.",
			},
		}, "name"),
		Handler: func(args map[string]any) (string, error) {
			name, err := stringArg(args, "name", true)
			if err != nil {
				return "", err
			}
			workplace, err := stringArg(args, "workplace", false)
			if err != nil {
				return "", err
			}

			id, err := sess.AddPlayer(name, workplace)
			if err != nil {
				return "", err
			}
			return jsonResult(map[string]any{
				"player_id": id,
				"result":    "player added",
			})
		},
	})

	r.Register(Tool{
		Name:        "get_words",
		Description: "Draw the bingo board and start the game. The words appear on screen; do not read them aloud.",
		Parameters:  objectSchema(map[string]any{}),
		Handler: func(args map[string]any) (string, error) {
			if err := sess.DrawBoard(); err != nil {
				return "", err
			}
			return jsonResult(map[string]any{
				"result": "words are now shown on screen",
			})
		},
	})

	r.Register(Tool{
		Name:        "word_spoken",
		Description: "Record that a player said one of the board words. Set valid_use only for organic conversational usage, not recitation.",
		Parameters: objectSchema(map[string]any{
			"player_id": map[string]any{
				"type":        "string",
				"description": "The ID of the player who said the word.",
			},
			"word": map[string]any{
				"type":        "string",
				"description": "The board word that was spoken.",
			},
			"valid_use": map[string]any{
				"type":        "boolean",
				"description": "Whether the word came up naturally in conversation.",
			},
		}, "player_id", "word", "valid_use"),
		Handler: func(args map[string]any) (string, error) {
			playerID, err := stringArg(args, "player_id", true)
			if err != nil {
				return "", err
			}
			word, err := stringArg(args, "word", true)
			if err != nil {
				return "", err
			}
			validUse, err := boolArg(args, "valid_use")
			if err != nil {
				return "", err
			}

			out, err := sess.WordSpoken(game.PlayerID(playerID), word, validUse)
			if err != nil {
				return "", err
			}

			payload := map[string]any{
				"points_awarded": out.PointsAwarded,
				"score":          out.Score,
			}
			if out.AlreadyUsed {
				payload["result"] = "word was already used, nothing changed"
			} else {
				payload["result"] = "word marked used"
			}
			if out.Report != nil {
				payload["game_over"] = true
				payload["winners"] = out.Report.Winners
				payload["final_scores"] = out.Report.FinalScores
			}
			return jsonResult(payload)
		},
	})

	r.Register(Tool{
		Name:        "no_word_spoken",
		Description: "Record a conversational turn in which no board word was spoken.",
		Parameters:  objectSchema(map[string]any{}),
		Handler: func(args map[string]any) (string, error) {
			if err := sess.NoWordSpoken(); err != nil {
				return "", err
			}
			return jsonResult(map[string]any{"result": "noted"})
		},
	})

	r.Register(Tool{
		Name:        "start_over",
		Description: "Reset a finished game so new players can join.",
		Parameters:  objectSchema(map[string]any{}),
		Handler: func(args map[string]any) (string, error) {
			if err := sess.StartOver(); err != nil {
				return "", err
			}
			return jsonResult(map[string]any{
				"result": "game reset, ready for players",
			})
		},
	})

	return r
}
