package main

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/mgnsk/lqueue"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	c := lqueue.NewChain(lqueue.WithLogger(logger))

	for _, words := range [][]string{
		{"pear", "apple", "fig"},
		{"kiwi", "banana"},
		{"cherry", "apple"},
	} {
		q := lqueue.New(
			lqueue.WithLogger(logger),
			lqueue.WithSource(rand.New(rand.NewPCG(1, 2))),
		)

		for _, w := range words {
			q.InsertTail(w)
		}

		q.Shuffle()
		q.Sort()

		c.Add(q)
	}

	var merged *lqueue.Queue
	c.Do(func(ctx *lqueue.Context) bool {
		if ctx.ID == 0 {
			merged = ctx.Q
		}
		return true
	})

	n := c.MergeAll()
	merged.DeleteDup()

	buf := make([]byte, 8)
	if e := merged.RemoveHead(buf); e != nil {
		logger.Info("removed head", zap.ByteString("value", buf[:slices.Index(buf, 0)]))
		lqueue.Release(e)
	}

	// Use the result.
	fmt.Println(n, slices.Collect(merged.Values()))
}
