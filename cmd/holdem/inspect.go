package main

import (
	"fmt"
	"os"

	"github.com/lox/holdemcore/holdem"
	"github.com/lox/holdemcore/internal/snapfile"
)

type InspectCmd struct {
	Snapshot string `arg:"" type:"existingfile" help:"Snapshot JSON written by simulate --snapshot-dir"`
	As       string `help:"Show the table as this player sees it (default shows every card)"`
	Spectate bool   `help:"Show the table as a spectator sees it"`
}

func (c *InspectCmd) Run() error {
	state, err := snapfile.Read(c.Snapshot)
	if err != nil {
		return err
	}
	if c.As != "" || c.Spectate {
		state = holdem.View(state, c.As)
	}
	fmt.Fprintln(os.Stdout, renderState(state))
	return nil
}
