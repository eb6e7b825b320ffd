package cmu_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/openmcu/gecko/cmu"
	"github.com/openmcu/gecko/hal"
	"github.com/openmcu/gecko/regs"
)

var _ = Describe("Configure rollback", func() {
	var (
		mockCtrl *gomock.Controller
		block    *MockCMU
		resolver *cmu.CMU
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		block = NewMockCMU(mockCtrl)
		resolver = cmu.New(block).WithPollBudget(8)
	})

	It("should not touch a register on an invalid prescaler", func() {
		_, err := resolver.Configure(
			cmu.NewConfig().WithPrescaler(cmu.DomainHF, 33))

		var invalid *cmu.InvalidPrescalerError
		Expect(errors.As(err, &invalid)).To(BeTrue())
		Expect(resolver.Clocks()).To(Equal(cmu.Default()))
	})

	It("should not touch a register on an out-of-range frequency", func() {
		_, err := resolver.Configure(
			cmu.NewConfig().WithSource(cmu.DomainHF, cmu.HFXO(48*hal.MHz)))

		var outOfRange *cmu.FrequencyOutOfRangeError
		Expect(errors.As(err, &outOfRange)).To(BeTrue())
		Expect(outOfRange.Domain).To(Equal(cmu.DomainHF))
		Expect(outOfRange.Max).To(Equal(40 * hal.MHz))
	})

	It("should leave the multiplexers alone on an oscillator timeout", func() {
		block.EXPECT().AUXHFRCOBand().Return(regs.Band19MHz).AnyTimes()
		block.EXPECT().OscillatorReady(regs.HFXO).Return(false).AnyTimes()
		block.EXPECT().OscillatorEnabled(regs.HFXO).Return(false)
		block.EXPECT().EnableOscillator(regs.HFXO)

		_, err := resolver.Configure(
			cmu.NewConfig().WithSource(cmu.DomainHF, cmu.HFXO(38_400*hal.KHz)))

		var timeout *cmu.OscillatorStartTimeoutError
		Expect(errors.As(err, &timeout)).To(BeTrue())
		Expect(timeout.Polls).To(Equal(8))
		Expect(resolver.Clocks()).To(Equal(cmu.Default()))
	})
})

var _ = Describe("Commit ordering", func() {
	var (
		mockCtrl *gomock.Controller
		block    *MockCMU
		resolver *cmu.CMU
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		block = NewMockCMU(mockCtrl)
		resolver = cmu.New(block).WithPollBudget(8)

		block.EXPECT().HFRCOBand().Return(regs.Band19MHz).AnyTimes()
		block.EXPECT().AUXHFRCOBand().Return(regs.Band19MHz).AnyTimes()
		block.EXPECT().OscillatorReady(gomock.Any()).Return(true).AnyTimes()
	})

	It("should raise the prescaler before switching to a faster source", func() {
		block.EXPECT().HFClockSelected().Return(regs.HFSrcHFXO).AnyTimes()
		gomock.InOrder(
			block.EXPECT().SetPrescaler(regs.PrescHF, uint32(4)),
			block.EXPECT().SelectHFClock(regs.HFSrcHFXO),
			block.EXPECT().DisableOscillator(regs.HFRCO),
		)

		_, err := resolver.Configure(cmu.NewConfig().
			WithSource(cmu.DomainHF, cmu.HFXO(38_400*hal.KHz)).
			WithPrescaler(cmu.DomainHF, 4))

		Expect(err).NotTo(HaveOccurred())
	})

	It("should lower the prescaler only after the switch is confirmed", func() {
		block.EXPECT().SetPrescaler(regs.PrescHF, uint32(4))
		_, err := resolver.Configure(
			cmu.NewConfig().WithPrescaler(cmu.DomainHF, 4))
		Expect(err).NotTo(HaveOccurred())

		block.EXPECT().HFClockSelected().Return(regs.HFSrcHFXO).AnyTimes()
		block.EXPECT().DisableOscillator(regs.HFRCO)
		gomock.InOrder(
			block.EXPECT().SelectHFClock(regs.HFSrcHFXO),
			block.EXPECT().SetPrescaler(regs.PrescHF, uint32(2)),
		)

		_, err = resolver.Configure(cmu.NewConfig().
			WithSource(cmu.DomainHF, cmu.HFXO(38_400*hal.KHz)).
			WithPrescaler(cmu.DomainHF, 2))

		Expect(err).NotTo(HaveOccurred())
	})
})
