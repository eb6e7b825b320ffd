package devsim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/openmcu/gecko/regs"
)

type recordingHook struct {
	accesses []Access
}

func (h *recordingHook) Func(a Access) {
	h.accesses = append(h.accesses, a)
}

var _ = Describe("Device", func() {
	var (
		device *Device
		hook   *recordingHook
	)

	BeforeEach(func() {
		device = NewDevice()
		hook = &recordingHook{}
		device.AcceptHook(hook)
	})

	It("should deliver every access with increasing sequence numbers", func() {
		device.CMU.EnableOscillator(regs.HFXO)
		device.GPIO.SetOut(regs.PortF, 4)
		device.CMU.OscillatorReady(regs.HFXO)

		Expect(hook.accesses).To(HaveLen(3))
		Expect(hook.accesses[0].Seq).To(Equal(uint64(1)))
		Expect(hook.accesses[1].Seq).To(Equal(uint64(2)))
		Expect(hook.accesses[2].Seq).To(Equal(uint64(3)))
		Expect(hook.accesses[0].Block).To(Equal("CMU"))
		Expect(hook.accesses[0].Register).To(Equal("OSCENCMD.HFXOEN"))
		Expect(hook.accesses[0].Op).To(Equal(OpWrite))
		Expect(hook.accesses[2].Op).To(Equal(OpRead))
	})
})

var _ = Describe("CMURegs", func() {
	var device *Device

	BeforeEach(func() {
		device = NewDevice()
	})

	It("should power up with HFRCO driving HFCLK", func() {
		Expect(device.CMU.OscillatorEnabled(regs.HFRCO)).To(BeTrue())
		Expect(device.CMU.OscillatorReady(regs.HFRCO)).To(BeTrue())
		Expect(device.CMU.HFClockSelected()).To(Equal(regs.HFSrcHFRCO))
		Expect(device.CMU.HFRCOBand()).To(Equal(regs.Band19MHz))
		Expect(device.CMU.Prescaler(regs.PrescHF)).To(Equal(uint32(1)))
	})

	It("should report ready only after the startup polls", func() {
		device.CMU.SetStartupPolls(regs.HFXO, 3)
		device.CMU.EnableOscillator(regs.HFXO)

		Expect(device.CMU.OscillatorReady(regs.HFXO)).To(BeFalse())
		Expect(device.CMU.OscillatorReady(regs.HFXO)).To(BeFalse())
		Expect(device.CMU.OscillatorReady(regs.HFXO)).To(BeTrue())
	})

	It("should never report a broken oscillator ready", func() {
		device.CMU.BreakOscillator(regs.HFXO)
		device.CMU.EnableOscillator(regs.HFXO)

		for i := 0; i < 100; i++ {
			Expect(device.CMU.OscillatorReady(regs.HFXO)).To(BeFalse())
		}
	})

	It("should trail the select field by the switch delay", func() {
		device.CMU.SetStartupPolls(regs.LFRCO, 0)
		device.CMU.EnableOscillator(regs.LFRCO)
		device.CMU.SetSwitchDelay(2)

		device.CMU.SelectHFClock(regs.HFSrcLFRCO)

		Expect(device.CMU.HFClockSelected()).To(Equal(regs.HFSrcHFRCO))
		Expect(device.CMU.HFClockSelected()).To(Equal(regs.HFSrcLFRCO))
	})

	It("should panic when switching to an oscillator that is not ready", func() {
		Expect(func() {
			device.CMU.SelectHFClock(regs.HFSrcHFXO)
		}).To(Panic())
	})

	It("should store prescalers as ratio minus one", func() {
		hook := &recordingHook{}
		device.AcceptHook(hook)

		device.CMU.SetPrescaler(regs.PrescPer, 8)

		Expect(hook.accesses[0].Register).To(Equal("HFPERPRESC.PRESC"))
		Expect(hook.accesses[0].Value).To(Equal(uint32(7)))
		Expect(device.CMU.Prescaler(regs.PrescPer)).To(Equal(uint32(8)))
	})

	It("should track clock gates", func() {
		Expect(device.CMU.ClockGateEnabled(regs.GateUSART1)).To(BeFalse())
		device.CMU.EnableClockGate(regs.GateUSART1)
		Expect(device.CMU.ClockGateEnabled(regs.GateUSART1)).To(BeTrue())
	})
})

var _ = Describe("GPIORegs", func() {
	var device *Device

	BeforeEach(func() {
		device = NewDevice()
	})

	It("should drive the out latch through set, clear, and toggle", func() {
		device.GPIO.SetOut(regs.PortA, 3)
		Expect(device.GPIO.OutBit(regs.PortA, 3)).To(BeTrue())

		device.GPIO.ToggleOut(regs.PortA, 3)
		Expect(device.GPIO.OutBit(regs.PortA, 3)).To(BeFalse())

		device.GPIO.ToggleOut(regs.PortA, 3)
		device.GPIO.ClearOut(regs.PortA, 3)
		Expect(device.GPIO.OutBit(regs.PortA, 3)).To(BeFalse())
	})

	It("should read external drive on an input pin", func() {
		device.GPIO.SetPinMode(regs.PortC, 9, regs.ModeInput)

		Expect(device.GPIO.InBit(regs.PortC, 9)).To(BeFalse())
		device.GPIO.SetPinInput(regs.PortC, 9, true)
		Expect(device.GPIO.InBit(regs.PortC, 9)).To(BeTrue())
	})

	It("should read back the out latch on a push-pull pin", func() {
		device.GPIO.SetPinMode(regs.PortF, 4, regs.ModePushPull)
		device.GPIO.SetOut(regs.PortF, 4)

		Expect(device.GPIO.InBit(regs.PortF, 4)).To(BeTrue())
	})

	It("should panic on a pin the package does not have", func() {
		Expect(func() {
			device.GPIO.SetOut(regs.PortA, 16)
		}).To(Panic())
	})
})

var _ = Describe("USARTRegs", func() {
	var device *Device

	BeforeEach(func() {
		device = NewDevice()
	})

	It("should loop transmitted frames back to the receiver", func() {
		device.USART1.SetSyncMode(regs.SyncConfig{MSBFirst: true})
		device.USART1.Enable()

		Expect(device.USART1.RxDataValid()).To(BeFalse())
		device.USART1.WriteTxData(0xA5)
		Expect(device.USART1.RxDataValid()).To(BeTrue())
		Expect(device.USART1.ReadRxData()).To(Equal(byte(0xA5)))
		Expect(device.USART1.RxDataValid()).To(BeFalse())
	})

	It("should drop frames written while disabled", func() {
		device.USART1.WriteTxData(0xA5)
		Expect(device.USART1.RxDataValid()).To(BeFalse())
	})

	It("should clear its configuration on reset", func() {
		device.USART0.SetClockDiv(2048)
		device.USART0.Enable()

		device.USART0.Reset()

		Expect(device.USART0.ClockDiv()).To(Equal(uint32(0)))
		Expect(device.USART0.Enabled()).To(BeFalse())
		Expect(device.USART0.TxBufferLevel()).To(BeFalse())
	})
})

var _ = Describe("TimerRegs", func() {
	var device *Device

	BeforeEach(func() {
		device = NewDevice()
	})

	It("should count only while running, wrapping at TOP", func() {
		device.Timer0.SetUpCount(regs.TimerDiv1)
		device.Timer0.SetTop(9)

		device.Timer0.Tick(5)
		Expect(device.Timer0.Count()).To(Equal(uint16(0)))

		device.Timer0.Start()
		device.Timer0.Tick(5)
		Expect(device.Timer0.Count()).To(Equal(uint16(5)))

		device.Timer0.Tick(7)
		Expect(device.Timer0.Count()).To(Equal(uint16(2)))

		device.Timer0.Stop()
		Expect(device.Timer0.Running()).To(BeFalse())
	})

	It("should hold per-channel compare settings", func() {
		device.Timer1.SetCCMode(2, regs.CCModePWM)
		device.Timer1.SetCompare(2, 1234)

		Expect(device.Timer1.CCModeOf(2)).To(Equal(regs.CCModePWM))
		Expect(device.Timer1.Compare(2)).To(Equal(uint16(1234)))
		Expect(device.Timer1.CCModeOf(0)).To(Equal(regs.CCModeOff))
	})
})
