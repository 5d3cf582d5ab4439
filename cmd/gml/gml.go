package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/signadot/gml"
	"github.com/signadot/gml/encode"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"golang.org/x/sync/errgroup"
)

func gmlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color {
		color.NoColor = false
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readInput reads the file at path, or the command input if path is "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// eachInput calls f with the name and contents of each file in files, or
// of the command input if files is empty.
func eachInput(cc *cli.Context, files []string, f func(name string, d []byte) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if err := f(file, d); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

type formatted struct {
	name    string
	in, out []byte
}

func (f *formatted) changed() bool {
	return !bytes.Equal(f.in, f.out)
}

// formatInputs reads and formats each of files concurrently, returning
// the results in the order of files. An empty files formats the command
// input.
func formatInputs(cc *cli.Context, files []string, opts ...encode.EncodeOption) ([]formatted, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	res := make([]formatted, len(files))
	g := &errgroup.Group{}
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		g.Go(func() error {
			d, err := readInput(cc, file)
			if err != nil {
				return err
			}
			out, err := gml.Format(d, opts...)
			if err != nil {
				return fmt.Errorf("error processing %s: %w", file, err)
			}
			res[i] = formatted{name: file, in: d, out: out}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
