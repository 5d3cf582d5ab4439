package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Parse    bool
	Fmt      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("GML_DEBUG_TOKENIZE")
	d.Parse = boolEnv("GML_DEBUG_PARSE")
	d.Fmt = boolEnv("GML_DEBUG_FMT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Parse() bool {
	return d.Parse
}
func Fmt() bool {
	return d.Fmt
}
