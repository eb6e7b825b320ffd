package hal

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Hertz", func() {
	It("should divide with truncation", func() {
		Expect((19 * MHz).Div(2)).To(Equal(9_500_000 * Hz))
		Expect((19 * MHz).Div(8)).To(Equal(2_375_000 * Hz))
		Expect(Hertz(32768).Div(3)).To(Equal(Hertz(10922)))
	})

	It("should panic on a zero prescaler", func() {
		Expect(func() { (1 * MHz).Div(0) }).To(Panic())
	})

	It("should get period", func() {
		Expect((1 * MHz).Period()).To(Equal(time.Microsecond))
		Expect((1 * KHz).Period()).To(Equal(time.Millisecond))
	})

	It("should count cycles, rounding up", func() {
		Expect((1 * MHz).Cycles(time.Microsecond)).To(Equal(uint64(1)))
		Expect((19 * MHz).Cycles(time.Microsecond)).To(Equal(uint64(19)))
		Expect((19 * MHz).Cycles(100 * time.Nanosecond)).To(Equal(uint64(2)))
	})

	It("should format itself with the largest exact unit", func() {
		Expect((38_400 * KHz).String()).To(Equal("38400 kHz"))
		Expect((19 * MHz).String()).To(Equal("19 MHz"))
		Expect(Hertz(32768).String()).To(Equal("32768 Hz"))
	})
})
