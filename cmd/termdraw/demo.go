package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/termdraw"
	"github.com/spf13/cobra"
)

func newDemoCmd(flags *logFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show the demo scene in the terminal until q is pressed",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := flags.open()
			if err != nil {
				return err
			}
			defer closeLog()

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init screen: %w", err)
			}
			defer screen.Fini()

			renderer, err := termdraw.NewRenderer(termdraw.Options{
				Screen: screen,
				Logger: log,
			})
			if err != nil {
				return err
			}
			return runDemo(screen, renderer)
		},
	}
}

// runDemo repaints the scene on every resize and returns on q, Esc or
// Ctrl-C.
func runDemo(screen tcell.Screen, renderer *termdraw.Renderer) error {
	for {
		if _, err := renderer.Frame(paintScene); err != nil {
			return err
		}
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			renderer.Resize()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}
