package playback

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Controller", func() {
	var c *Controller

	tickN := func(id TimerID, n int) {
		for i := 0; i < n; i++ {
			c.Tick(id)
		}
	}

	BeforeEach(func() {
		c = New(5, time.Second)
	})

	It("starts stopped at the first stop", func() {
		s := c.Status()
		Expect(s.State).To(Equal(Stopped))
		Expect(s.Index).To(Equal(0))
		Expect(s.Count).To(Equal(5))
		_, active := c.ActiveTimer()
		Expect(active).To(BeFalse())
	})

	It("falls back to the default interval", func() {
		Expect(New(3, 0).Interval()).To(Equal(DefaultInterval))
	})

	Describe("playing through a route", func() {
		It("advances one stop per tick and stops itself at the end", func() {
			id, ok := c.Play()
			Expect(ok).To(BeTrue())
			Expect(c.Status().Playing()).To(BeTrue())

			for want := 1; want <= 3; want++ {
				Expect(c.Tick(id)).To(BeTrue())
				Expect(c.Status().Index).To(Equal(want))
			}

			Expect(c.Tick(id)).To(BeFalse())
			s := c.Status()
			Expect(s.Index).To(Equal(4))
			Expect(s.State).NotTo(Equal(Playing))
			_, active := c.ActiveTimer()
			Expect(active).To(BeFalse())
		})

		It("ignores a fifth tick after the automatic stop", func() {
			id, _ := c.Play()
			tickN(id, 4)

			Expect(c.Tick(id)).To(BeFalse())
			Expect(c.Status().Index).To(Equal(4))
			Expect(c.Status().State).To(Equal(Paused))
			_, active := c.ActiveTimer()
			Expect(active).To(BeFalse())
		})

		It("restarts from the first stop when played at the end", func() {
			id, _ := c.Play()
			tickN(id, 4)
			Expect(c.Status().Index).To(Equal(4))

			id2, ok := c.Play()
			Expect(ok).To(BeTrue())
			Expect(id2).NotTo(Equal(id))
			Expect(c.Status().Index).To(Equal(0))
			Expect(c.Status().Playing()).To(BeTrue())
		})

		It("reports progress as index over last index", func() {
			id, _ := c.Play()
			tickN(id, 2)
			Expect(c.Status().Progress).To(BeNumerically("~", 0.5))
		})
	})

	Describe("pause", func() {
		It("keeps the index and cancels the timer", func() {
			id, _ := c.Play()
			tickN(id, 2)
			c.Pause()

			Expect(c.Status().State).To(Equal(Paused))
			Expect(c.Status().Index).To(Equal(2))
			Expect(c.Tick(id)).To(BeFalse())
			Expect(c.Status().Index).To(Equal(2))
		})

		It("resumes from the paused index with a fresh timer", func() {
			id, _ := c.Play()
			tickN(id, 2)
			c.Pause()

			id2, _ := c.Play()
			Expect(id2).NotTo(Equal(id))
			Expect(c.Status().Index).To(Equal(2))
			Expect(c.Tick(id)).To(BeFalse())
			Expect(c.Tick(id2)).To(BeTrue())
			Expect(c.Status().Index).To(Equal(3))
		})

		It("does nothing unless playing", func() {
			c.Pause()
			Expect(c.Status().State).To(Equal(Stopped))
		})
	})

	Describe("reset", func() {
		DescribeTable("returns to Stopped(0) from any state",
			func(setup func() TimerID) {
				id := setup()
				c.Reset()

				s := c.Status()
				Expect(s.State).To(Equal(Stopped))
				Expect(s.Index).To(Equal(0))
				_, active := c.ActiveTimer()
				Expect(active).To(BeFalse())

				Expect(c.Tick(id)).To(BeFalse())
				Expect(c.Status().Index).To(Equal(0))
			},
			Entry("playing at index 3", func() TimerID {
				id, _ := c.Play()
				tickN(id, 3)
				return id
			}),
			Entry("paused at index 2", func() TimerID {
				id, _ := c.Play()
				tickN(id, 2)
				c.Pause()
				return id
			}),
			Entry("finished at the end", func() TimerID {
				id, _ := c.Play()
				tickN(id, 4)
				return id
			}),
			Entry("already stopped", func() TimerID { return 0 }),
		)
	})

	Describe("timer identity", func() {
		It("keeps a single live timer across repeated plays", func() {
			first, _ := c.Play()
			second, _ := c.Play()

			Expect(c.Tick(first)).To(BeFalse())
			Expect(c.Status().Index).To(Equal(0))
			Expect(c.Tick(second)).To(BeTrue())
			Expect(c.Status().Index).To(Equal(1))
		})

		It("rejects the zero id", func() {
			c.Play()
			Expect(c.Tick(0)).To(BeFalse())
		})

		It("toggles between playing and paused", func() {
			id, ok := c.Toggle()
			Expect(ok).To(BeTrue())
			Expect(c.Status().Playing()).To(BeTrue())

			_, ok = c.Toggle()
			Expect(ok).To(BeFalse())
			Expect(c.Status().State).To(Equal(Paused))
			Expect(c.Tick(id)).To(BeFalse())
		})
	})

	Describe("degenerate routes", func() {
		It("refuses to play an empty route", func() {
			c = New(0, time.Second)
			_, ok := c.Play()
			Expect(ok).To(BeFalse())
			Expect(c.Status().State).To(Equal(Stopped))
			Expect(c.Status().Progress).To(BeZero())
			c.Seek(3)
			Expect(c.Status().Index).To(Equal(0))
		})

		It("stops a single-stop route on the first tick", func() {
			c = New(1, time.Second)
			id, ok := c.Play()
			Expect(ok).To(BeTrue())
			Expect(c.Tick(id)).To(BeFalse())
			Expect(c.Status().Index).To(Equal(0))
			Expect(c.Status().Progress).To(BeZero())
		})
	})

	Describe("route changes", func() {
		It("resets and cancels when the stop count changes", func() {
			id, _ := c.Play()
			tickN(id, 2)
			c.SetStopCount(3)

			Expect(c.Status()).To(Equal(Status{Index: 0, Count: 3, State: Stopped}))
			Expect(c.Tick(id)).To(BeFalse())
		})

		It("clamps seeks into range", func() {
			c.Seek(10)
			Expect(c.Status().Index).To(Equal(4))
			c.Seek(-2)
			Expect(c.Status().Index).To(Equal(0))
		})
	})
})
