package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openmcu/gecko/cmu"
	"github.com/openmcu/gecko/devsim"
	"github.com/openmcu/gecko/hal"
)

var clocksFlags struct {
	source    string
	hfxoHz    uint32
	lfxoHz    uint32
	hfPresc   uint32
	corePresc uint32
	perPresc  uint32
	expPresc  uint32
}

var clocksCmd = &cobra.Command{
	Use:   "clocks",
	Short: "Resolve a clock configuration and print the resulting tree.",
	Long: `clocks resolves the requested source and prescaler selection ` +
		`against a simulated device and prints the frequency of every ` +
		`clock domain, or the typed error the request would fail with.`,
	Run: func(cmd *cobra.Command, args []string) {
		runClocks()
	},
}

func init() {
	f := clocksCmd.Flags()
	f.StringVar(&clocksFlags.source, "source", "hfrco",
		"HFCLK source: hfrco, hfxo, lfrco, or lfxo")
	f.Uint32Var(&clocksFlags.hfxoHz, "hfxo-hz", 38_400_000,
		"declared HFXO crystal frequency in Hz")
	f.Uint32Var(&clocksFlags.lfxoHz, "lfxo-hz", 32_768,
		"declared LFXO crystal frequency in Hz")
	f.Uint32Var(&clocksFlags.hfPresc, "hf-presc", 1, "HFCLK prescaler")
	f.Uint32Var(&clocksFlags.corePresc, "core-presc", 1, "HFCORECLK prescaler")
	f.Uint32Var(&clocksFlags.perPresc, "per-presc", 1, "HFPERCLK prescaler")
	f.Uint32Var(&clocksFlags.expPresc, "exp-presc", 1, "HFEXPCLK prescaler")

	rootCmd.AddCommand(clocksCmd)
}

func sourceFromFlag() (cmu.Source, error) {
	switch clocksFlags.source {
	case "hfrco":
		return cmu.HFRCO(), nil
	case "hfxo":
		return cmu.HFXO(hal.Hertz(clocksFlags.hfxoHz)), nil
	case "lfrco":
		return cmu.LFRCO(), nil
	case "lfxo":
		return cmu.LFXO(hal.Hertz(clocksFlags.lfxoHz)), nil
	}
	return cmu.Source{}, fmt.Errorf("unknown source %q", clocksFlags.source)
}

func runClocks() {
	source, err := sourceFromFlag()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	device := devsim.NewDevice()
	resolver := cmu.New(device.CMU)

	cfg := cmu.NewConfig().
		WithSource(cmu.DomainHF, source).
		WithPrescaler(cmu.DomainHF, clocksFlags.hfPresc).
		WithPrescaler(cmu.DomainCore, clocksFlags.corePresc).
		WithPrescaler(cmu.DomainPer, clocksFlags.perPresc).
		WithPrescaler(cmu.DomainExp, clocksFlags.expPresc)

	clocks, err := resolver.Configure(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration rejected: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(clocks)
}
