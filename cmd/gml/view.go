package main

import (
	"io"

	"github.com/signadot/gml"
	"github.com/signadot/gml/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.plainOpts()
	if !cfg.Plain {
		opts = append(opts, encode.EncodeColors(encode.NewColors()))
	}
	return eachInput(cc, args, func(_ string, d []byte) error {
		return viewOne(cc.Out, d, opts)
	})
}

func viewOne(w io.Writer, d []byte, opts []encode.EncodeOption) error {
	out, err := gml.Format(d, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
