package delay_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/openmcu/gecko/cmu"
	"github.com/openmcu/gecko/delay"
)

var _ = Describe("Delay", func() {
	It("should convert durations to iterations, rounding up", func() {
		d := delay.New(cmu.Default())

		// 19 MHz core: 19 cycles per microsecond, 3 cycles per iteration.
		Expect(d.Iterations(time.Microsecond)).To(Equal(uint64(7)))
		Expect(d.Iterations(time.Millisecond)).To(Equal(uint64(6334)))
		Expect(d.Iterations(0)).To(Equal(uint64(0)))
	})

	It("should panic on a snapshot that resolves no frequencies", func() {
		Expect(func() { delay.New(cmu.Clocks{}) }).To(Panic())
	})

	It("should spin without blocking forever", func() {
		d := delay.New(cmu.Default())

		done := make(chan struct{})
		go func() {
			d.DelayUs(10)
			close(done)
		}()

		Eventually(done).Should(BeClosed())
	})
})
