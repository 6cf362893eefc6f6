package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Span   bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("RANGEFINDER_DEBUG_DECODE")
	d.Span = boolEnv("RANGEFINDER_DEBUG_SPAN")
	d.LSP = boolEnv("RANGEFINDER_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Span() bool {
	return d.Span
}
func LSP() bool {
	return d.LSP
}
