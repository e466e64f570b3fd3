package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-denoise/dsp/filter/bank"
	"github.com/cwbudde/algo-denoise/dsp/filter/biquad"
)

func newFiltersCmd(root *rootOptions) *cobra.Command {
	var cutoff float64
	var order int

	cmd := &cobra.Command{
		Use:   "filters",
		Short: "List filter kinds and their response at the configured sample rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("cutoff") {
				cfg.Filter.Cutoff = cutoff
			}
			if cmd.Flags().Changed("order") {
				cfg.Filter.Order = order
			}

			grid, err := cfg.TimeGrid()
			if err != nil {
				return err
			}
			return printFilters(cmd, cfg.Filter.Cutoff, cfg.Filter.Order, cfg.Filter.Window, cfg.SampleRate(grid))
		},
	}
	cmd.Flags().Float64Var(&cutoff, "cutoff", 0, "cutoff frequency in Hz")
	cmd.Flags().IntVar(&order, "order", 0, "filter order")
	return cmd
}

func printFilters(cmd *cobra.Command, cutoff float64, order, window int, sampleRate float64) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kind\tParameters\tSections\tDC [dB]\tAt cutoff [dB]\tAt 2x cutoff [dB]\n")
	fmt.Fprintf(tw, "----\t----------\t--------\t-------\t--------------\t-----------------\n")

	for _, kind := range bank.Kinds() {
		f := bank.Settings{Kind: kind, Cutoff: cutoff, Order: order, Window: window}.Filter()

		if kind == bank.KindMovingAverage {
			fmt.Fprintf(tw, "%s\twindow=%d\t-\t-\t-\t-\n", kind, window)
			continue
		}

		params := fmt.Sprintf("cutoff=%g order=%d", cutoff, order)
		coeffs, err := bank.Design(f, sampleRate)
		if err != nil {
			fmt.Fprintf(tw, "%s\t%s\t-\t-\t-\t%v\n", kind, params, err)
			continue
		}

		chain := biquad.NewChain(coeffs)
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.2f\t%.2f\t%.2f\n",
			kind,
			params,
			chain.NumSections(),
			chain.MagnitudeDB(0, sampleRate),
			chain.MagnitudeDB(cutoff, sampleRate),
			twiceCutoffDB(chain, cutoff, sampleRate),
		)
	}
	return tw.Flush()
}

// twiceCutoffDB clamps the probe just below Nyquist.
func twiceCutoffDB(chain *biquad.Chain, cutoff, sampleRate float64) float64 {
	f := 2 * cutoff
	if nyq := 0.5 * sampleRate; f >= nyq {
		f = 0.999 * nyq
	}
	return chain.MagnitudeDB(f, sampleRate)
}
