package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/openmcu/gecko/cmu"
	"github.com/openmcu/gecko/devsim"
	"github.com/openmcu/gecko/gpio"
	"github.com/openmcu/gecko/hal"
	"github.com/openmcu/gecko/recording"
	"github.com/openmcu/gecko/regs"
	"github.com/openmcu/gecko/spi"
)

var traceFlags struct {
	db   string
	baud uint32
}

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Record the register accesses of an SPI bring-up sequence.",
	Long: `trace configures the clock tree for the 38.4 MHz crystal, brings ` +
		`up an SPI bus, performs a transfer, and records every register ` +
		`access to a SQLite database for offline inspection.`,
	Run: func(cmd *cobra.Command, args []string) {
		runTrace()
	},
}

func init() {
	f := traceCmd.Flags()
	f.StringVar(&traceFlags.db, "db", envDefault("GECKOTOOL_DB", ""),
		"database path without extension; empty picks a generated name")
	f.Uint32Var(&traceFlags.baud, "baud", 1_000_000,
		"SPI clock frequency in Hz")

	rootCmd.AddCommand(traceCmd)
}

func runTrace() {
	device := devsim.NewDevice()

	recorder := recording.New(traceFlags.db)
	device.AcceptHook(recording.NewRegisterTrace(recorder))

	resolver := cmu.New(device.CMU)
	clocks, err := resolver.Configure(cmu.NewConfig().
		WithSource(cmu.DomainHF, cmu.HFXO(38_400*hal.KHz)).
		WithPrescaler(cmu.DomainPer, 2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "clock configuration failed: %v\n", err)
		atexit.Exit(1)
	}

	pins := gpio.New(device.GPIO, device.CMU)
	cs := pins.Pin(regs.PortD, 14)
	cs.Configure(gpio.ModePushPull)
	cs.Set()

	bus, err := spi.New(device.USART1, device.CMU, regs.GateUSART1, clocks,
		spi.Config{Baud: hal.Hertz(traceFlags.baud), Mode: spi.Mode0})
	if err != nil {
		fmt.Fprintf(os.Stderr, "SPI bring-up failed: %v\n", err)
		atexit.Exit(1)
	}

	tx := []byte{0x9F, 0x00, 0x00, 0x00}
	rx := make([]byte, len(tx))

	cs.Clear()
	err = bus.Transfer(tx, rx)
	cs.Set()
	if err != nil {
		fmt.Fprintf(os.Stderr, "transfer failed: %v\n", err)
		atexit.Exit(1)
	}

	recorder.Flush()
	fmt.Printf("transferred % x, received % x at %v\n", tx, rx, bus.Baud())
}
