// SPDX-License-Identifier: MIT

// Command matcalc evaluates dense matrix operations given as JSON.
//
//	matcalc det '[[1,2],[3,4]]'
//	echo '[[4,7],[2,6]]' | matcalc inverse -
//	MATCALC_PRECISION=3 matcalc multiply @a.json @b.json
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/cofactor/internal/cli"
	"github.com/katalvlaran/cofactor/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	streams := cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	if err := cli.Execute(ctx, os.Args[1:], streams, config.Load); err != nil {
		stop()
		os.Exit(1)
	}
}
