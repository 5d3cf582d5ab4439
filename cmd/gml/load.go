package main

import (
	"fmt"

	"github.com/signadot/gml/ast"
	"github.com/signadot/gml/encode"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(_ string, d []byte) error {
		// json dumps are yaml documents too
		j, err := yaml.YAMLToJSON(d)
		if err != nil {
			return fmt.Errorf("error decoding dump: %w", err)
		}
		node, err := ast.FromJSON(j)
		if err != nil {
			return err
		}
		return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
