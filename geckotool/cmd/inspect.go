package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/openmcu/gecko/cmu"
	"github.com/openmcu/gecko/devsim"
	"github.com/openmcu/gecko/hal"
	"github.com/openmcu/gecko/inspect"
)

var inspectFlags struct {
	port int
	open bool
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Serve a live inspector for a simulated device.",
	Long: `inspect configures the clock tree on a simulated device and ` +
		`serves its state over HTTP: the resolved clock tree, per-block ` +
		`register state, recent register accesses, and process health.`,
	Run: func(cmd *cobra.Command, args []string) {
		runInspect()
	},
}

func init() {
	defaultPort, _ := strconv.Atoi(envDefault("GECKOTOOL_PORT", "0"))

	f := inspectCmd.Flags()
	f.IntVar(&inspectFlags.port, "port", defaultPort,
		"port to listen on; 0 picks a random port")
	f.BoolVar(&inspectFlags.open, "open", false,
		"open the inspector in the default browser")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect() {
	device := devsim.NewDevice()

	inspector := inspect.NewInspector(device)
	if inspectFlags.port != 0 {
		inspector = inspector.WithPortNumber(inspectFlags.port)
	}

	resolver := cmu.New(device.CMU)
	inspector.RegisterClocks(resolver.Clocks)

	_, err := resolver.Configure(cmu.NewConfig().
		WithSource(cmu.DomainHF, cmu.HFXO(38_400*hal.KHz)).
		WithPrescaler(cmu.DomainPer, 2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "clock configuration failed: %v\n", err)
		os.Exit(1)
	}

	if inspectFlags.open {
		inspector.StartServerAndOpen()
	} else {
		inspector.StartServer()
	}

	select {}
}
