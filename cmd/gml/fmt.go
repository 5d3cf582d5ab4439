package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/gml"
	"github.com/signadot/gml/encode"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func gmlFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	if !cfg.List && !cfg.Diff && !cfg.Write {
		return eachInput(cc, args, func(name string, d []byte) error {
			out, err := gml.Format(d, cfg.encOpts(cc.Out)...)
			if err != nil {
				return err
			}
			_, err = cc.Out.Write(out)
			return err
		})
	}
	res, err := formatInputs(cc, args, cfg.plainOpts()...)
	if err != nil {
		return err
	}
	for i := range res {
		if err := fmtOne(cfg, cc.Out, &res[i]); err != nil {
			return err
		}
	}
	return nil
}

func fmtOne(cfg *FmtConfig, w io.Writer, f *formatted) error {
	if !f.changed() {
		return nil
	}
	if cfg.List {
		if _, err := fmt.Fprintln(w, f.name); err != nil {
			return err
		}
	}
	if cfg.Diff {
		if err := writeDiff(cfg.MainConfig, w, f.name, f.in, f.out); err != nil {
			return err
		}
	}
	if cfg.Write {
		fi, err := os.Stat(f.name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(f.name, f.out, fi.Mode().Perm()); err != nil {
			return fmt.Errorf("could not write %q: %w", f.name, err)
		}
	}
	return nil
}

func (cfg *MainConfig) plainOpts() []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	return res
}

func writeDiff(cfg *MainConfig, w io.Writer, name string, a, b []byte) error {
	if !cfg.Color && !isTerminal(w) {
		_, err := io.WriteString(w, gml.DiffString(name, string(a), string(b)))
		return err
	}
	lines := gml.Diff(string(a), string(b))
	buf := bytes.NewBuffer(nil)
	fmt.Fprintf(buf, "--- %s\n+++ %s (formatted)\n", name, name)
	for _, ln := range lines {
		s := ln.String()
		switch ln.Op {
		case '-':
			s = color.RedString("%s", s)
		case '+':
			s = color.GreenString("%s", s)
		}
		buf.WriteString(s)
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}
