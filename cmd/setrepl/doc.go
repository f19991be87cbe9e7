/*
Package main provides an interactive command line tool (setrepl) for
experiments with linked sets of strings. Every command names a set and
operates on it, e.g.

	setrepl> new fruit apple pear "passion fruit"
	setrepl> insert fruit fig
	setrepl> cursor fruit
	setrepl> drop

setrepl is a sandbox for observing insertion order, set relations and the
fail-fast behaviour of cursors.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lset.repl'
func tracer() tracing.Trace {
	return tracing.Select("lset.repl")
}
