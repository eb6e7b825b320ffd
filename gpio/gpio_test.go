package gpio_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/openmcu/gecko/devsim"
	"github.com/openmcu/gecko/gpio"
	"github.com/openmcu/gecko/regs"
)

var _ = Describe("Controller", func() {
	var (
		device     *devsim.Device
		controller *gpio.Controller
	)

	BeforeEach(func() {
		device = devsim.NewDevice()
		controller = gpio.New(device.GPIO, device.CMU)
	})

	It("should enable the GPIO clock gate on creation", func() {
		Expect(device.CMU.ClockGateEnabled(regs.GateGPIO)).To(BeTrue())
	})

	It("should panic on a pin the package does not have", func() {
		Expect(func() { controller.Pin(regs.PortA, 16) }).To(Panic())
		Expect(func() { controller.Pin(regs.NumPorts, 0) }).To(Panic())
	})

	It("should configure and read back a pin mode", func() {
		pin := controller.Pin(regs.PortF, 4)

		pin.Configure(gpio.ModePushPull)

		Expect(pin.Mode()).To(Equal(gpio.ModePushPull))
		Expect(device.GPIO.PinMode(regs.PortF, 4)).To(Equal(regs.ModePushPull))
	})

	It("should drive an output pin", func() {
		pin := controller.Pin(regs.PortF, 4)
		pin.Configure(gpio.ModePushPull)

		pin.Set()
		Expect(pin.IsSet()).To(BeTrue())
		Expect(pin.Get()).To(BeTrue())

		pin.Toggle()
		Expect(pin.IsSet()).To(BeFalse())

		pin.Clear()
		Expect(pin.IsSet()).To(BeFalse())
	})

	It("should sample an input pin", func() {
		pin := controller.Pin(regs.PortC, 9)
		pin.Configure(gpio.ModeInput)

		Expect(pin.Get()).To(BeFalse())
		device.GPIO.SetPinInput(regs.PortC, 9, true)
		Expect(pin.Get()).To(BeTrue())
	})
})
