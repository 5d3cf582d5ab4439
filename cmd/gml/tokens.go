package main

import (
	"github.com/signadot/gml/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(name string, d []byte) error {
		token.PrintTokens(cc.Out, token.Tokenize(nil, d), name)
		return nil
	})
}
