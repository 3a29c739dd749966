// Command blockdrop runs the drag-and-drop block puzzle as a desktop window.
//
// Flags control the window size and log verbosity; the board geometry is
// derived from the window size at startup.
package main

import (
	"context"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v3"

	game_log "github.com/blockdropgame/blockdrop/internal/log"
	"github.com/blockdropgame/blockdrop/internal/ui"
)

func main() {
	cmd := &cli.Command{
		Name:  "blockdrop",
		Usage: "drag blocks onto a 10x10 board",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Value: 400, Usage: "window width in px"},
			&cli.IntFlag{Name: "height", Value: 800, Usage: "window height in px"},
			&cli.StringFlag{Name: "log-level", Value: "INFO", Usage: "DEBUG, INFO, WARN, ERROR or NONE"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := game_log.New(os.Stderr, game_log.LevelFromString(cmd.String("log-level")))
			w, h := int(cmd.Int("width")), int(cmd.Int("height"))

			g := ui.New(float64(w), float64(h), logger)
			ebiten.SetWindowSize(w, h)
			ebiten.SetWindowTitle("blockdrop")
			return ebiten.RunGame(g)
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
