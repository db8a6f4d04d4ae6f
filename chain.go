package lqueue

import (
	"github.com/mgnsk/lqueue/list"
	"go.uber.org/zap"
)

// Context binds a queue to its position in a Chain.
type Context struct {
	Q  *Queue
	ID int

	elem *list.Element[*Context]
}

// Size returns the size of the context's queue.
func (ctx *Context) Size() int {
	if ctx == nil {
		return 0
	}
	return ctx.Q.Size()
}

// Chain is an ordered list of queue contexts. Context IDs are kept
// contiguous from 0 in chain order.
//
// The zero value is a ready to use empty chain.
type Chain struct {
	contexts list.List[*Context]
	log      *zap.Logger
}

// NewChain creates an empty chain. Only the logger option applies to chains.
func NewChain(opts ...Option) *Chain {
	o := newDefaultQueueOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &Chain{log: o.logger}
}

// Len returns the number of contexts in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return c.contexts.Len()
}

// Add appends q to the chain and returns its context.
// It returns nil if the chain or the queue is nil.
func (c *Chain) Add(q *Queue) *Context {
	if c == nil || q == nil {
		return nil
	}

	ctx := &Context{
		Q:  q,
		ID: c.contexts.Len(),
	}
	ctx.elem = c.contexts.PushBack(ctx)

	return ctx
}

// Remove removes a context from the chain and renumbers the
// contexts after it.
func (c *Chain) Remove(ctx *Context) {
	if c == nil || ctx == nil || ctx.elem == nil || ctx.elem.List() != &c.contexts {
		return
	}

	next := ctx.elem.Next()
	c.contexts.Remove(ctx.elem)
	ctx.elem = nil

	for e := next; e != nil; e = e.Next() {
		e.Value.ID--
	}
}

// Do calls function f on each context of the chain, in order.
// If f returns false, Do stops the iteration.
func (c *Chain) Do(f func(ctx *Context) bool) {
	if c == nil {
		return
	}

	c.contexts.Do(func(e *list.Element[*Context]) bool {
		return f(e.Value)
	})
}

// MergeAll merges the sorted queues of the chain into the queue with ID 0
// and returns its size. The other queues are left empty.
// It panics if the context IDs are not contiguous from 0 or the
// queue with ID 0 is nil. Other nil queues count as empty.
func (c *Chain) MergeAll() int {
	if c.Len() == 0 {
		return 0
	}

	queues := make([]*list.List[string], c.contexts.Len())

	c.Do(func(ctx *Context) bool {
		if ctx.ID < 0 || ctx.ID >= len(queues) || queues[ctx.ID] != nil {
			panic("lqueue: non-contiguous context id")
		}

		if ctx.Q == nil {
			if ctx.ID == 0 {
				panic("lqueue: nil queue in first context")
			}
			queues[ctx.ID] = list.New[string]()
		} else {
			queues[ctx.ID] = &ctx.Q.list
		}

		return true
	})

	n := list.MergeAll(queues...)

	log := c.log
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("merged queues", zap.Int("queues", len(queues)), zap.Int("len", n))

	return n
}
