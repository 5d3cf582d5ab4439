package main

import (
	"github.com/signadot/gml/encode"
	"github.com/signadot/gml/format"
	"github.com/signadot/gml/parse"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	f := format.YAMLFormat
	if cfg.JSON {
		f = format.JSONFormat
	}
	return eachInput(cc, args, func(_ string, d []byte) error {
		doc, err := parse.Parse(d)
		if err != nil {
			return err
		}
		return encode.Encode(doc, cc.Out, encode.EncodeFormat(f))
	})
}
