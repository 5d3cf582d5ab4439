package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	res, err := formatInputs(cc, args, cfg.plainOpts()...)
	if err != nil {
		return err
	}
	unformatted := 0
	for i := range res {
		if !res[i].changed() {
			continue
		}
		unformatted++
		if _, err := fmt.Fprintf(cc.Out, "%s: not canonically formatted\n", res[i].name); err != nil {
			return err
		}
	}
	if unformatted > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
