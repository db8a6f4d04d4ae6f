package lqueue_test

import (
	"github.com/mgnsk/lqueue"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("merging a chain of queues", func() {
	var c *lqueue.Chain

	BeforeEach(func() {
		c = lqueue.NewChain()
	})

	When("the chain holds sorted queues", func() {
		Specify("they are merged into the first queue", func() {
			first := newQueue("1", "4")
			second := newQueue("2", "5")
			third := newQueue("3")

			Expect(c.Add(first).ID).To(Equal(0))
			Expect(c.Add(second).ID).To(Equal(1))
			Expect(c.Add(third).ID).To(Equal(2))

			Expect(c.MergeAll()).To(Equal(5))
			Expect(expectValidQueue(first)).To(Equal([]string{"1", "2", "3", "4", "5"}))
			Expect(expectValidQueue(second)).To(BeEmpty())
			Expect(expectValidQueue(third)).To(BeEmpty())

			first.InsertTail("6")
			second.InsertTail("0")
			Expect(expectValidQueue(first)).To(HaveLen(6))
			Expect(expectValidQueue(second)).To(Equal([]string{"0"}))
		})
	})

	When("the chain has a single queue", func() {
		Specify("its size is returned", func() {
			c.Add(newQueue("a", "b"))

			Expect(c.MergeAll()).To(Equal(2))
		})
	})

	When("the chain is empty", func() {
		Specify("nothing is merged", func() {
			Expect(c.MergeAll()).To(BeZero())

			var zero lqueue.Chain
			Expect(zero.MergeAll()).To(BeZero())

			var absent *lqueue.Chain
			Expect(absent.MergeAll()).To(BeZero())
		})
	})

	When("a context is removed", func() {
		Specify("the remaining IDs stay contiguous", func() {
			first := newQueue("2")
			second := c.Add(newQueue("9"))
			c.Add(first)
			last := c.Add(newQueue("1"))

			c.Remove(c.Add(newQueue("x")))
			c.Remove(second)

			var ids []int
			c.Do(func(ctx *lqueue.Context) bool {
				ids = append(ids, ctx.ID)
				return true
			})

			Expect(ids).To(Equal([]int{0, 1}))
			Expect(last.ID).To(Equal(1))
			Expect(c.MergeAll()).To(Equal(2))
			Expect(expectValidQueue(first)).To(Equal([]string{"1", "2"}))
		})
	})

	When("context IDs are not contiguous", func() {
		Specify("merging panics", func() {
			c.Add(newQueue("a"))
			ctx := c.Add(newQueue("b"))
			ctx.ID = 5

			Expect(func() { c.MergeAll() }).To(PanicWith("lqueue: non-contiguous context id"))
		})
	})

	When("a nil queue is added", func() {
		Specify("it is rejected and no elements are lost", func() {
			Expect(c.Add(nil)).To(BeNil())

			first := newQueue("1", "3")
			second := newQueue("2")
			Expect(c.Add(first).ID).To(Equal(0))
			Expect(c.Add(second).ID).To(Equal(1))

			Expect(c.MergeAll()).To(Equal(3))
			Expect(expectValidQueue(first)).To(Equal([]string{"1", "2", "3"}))
			Expect(expectValidQueue(second)).To(BeEmpty())
		})
	})

	When("the first context's queue is cleared", func() {
		Specify("merging panics and leaves the queues untouched", func() {
			ctx := c.Add(newQueue("1", "3"))
			second := newQueue("2")
			c.Add(second)
			ctx.Q = nil

			Expect(func() { c.MergeAll() }).To(PanicWith("lqueue: nil queue in first context"))
			Expect(expectValidQueue(second)).To(Equal([]string{"2"}))
		})
	})

	When("a later context's queue is cleared", func() {
		Specify("it counts as empty", func() {
			first := newQueue("1", "3")
			c.Add(first)
			c.Add(newQueue("2")).Q = nil
			c.Add(newQueue("0"))

			Expect(c.MergeAll()).To(Equal(3))
			Expect(expectValidQueue(first)).To(Equal([]string{"0", "1", "3"}))
		})
	})

	Specify("contexts report the size of their queue", func() {
		ctx := c.Add(newQueue("a", "b"))
		Expect(ctx.Size()).To(Equal(2))

		ctx.Q = nil
		Expect(ctx.Size()).To(BeZero())

		var absent *lqueue.Context
		Expect(absent.Size()).To(BeZero())
	})
})

var _ = Describe("nil chain", func() {
	var c *lqueue.Chain

	Specify("adding reports failure", func() {
		Expect(c.Add(lqueue.New())).To(BeNil())
		Expect(c.Len()).To(BeZero())
	})

	Specify("removing is a no-op", func() {
		Expect(func() {
			c.Remove(nil)
			c.Remove(&lqueue.Context{})
			lqueue.NewChain().Remove(nil)
		}).NotTo(Panic())
	})

	Specify("iterating visits nothing", func() {
		c.Do(func(*lqueue.Context) bool {
			Fail("unexpected context")
			return true
		})
	})
})
