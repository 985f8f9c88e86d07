package rnav

import (
	"fmt"
	"time"
)

// NavInfo is a middleware giving basic per-navigation stats
func NavInfo(ctx Context) error {
	start := time.Now()

	defer func() {
		fmt.Printf("%sZ nav %q [%s]\n",
			time.Now().UTC().Format("20060102T150405"),
			ctx.Path(), time.Since(start))
	}()

	return ctx.Next()
}
