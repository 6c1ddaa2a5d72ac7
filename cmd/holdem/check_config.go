package main

import (
	"fmt"
	"os"

	"github.com/lox/holdemcore/internal/config"
)

type CheckConfigCmd struct {
	Config string `arg:"" type:"existingfile" help:"HCL table configuration to validate"`
}

func (c *CheckConfigCmd) Run() error {
	file, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, renderConfig(file))
	return nil
}
