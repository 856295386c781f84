// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command seqsim pulses a ripple counter and prints its value after each
// clock pulse.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/db47h/seqsim"
)

var (
	width  int
	pulses int
)

var rootCmd = &cobra.Command{
	Use:   "seqsim",
	Short: "Drive a simulated ripple counter from the command line.",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := seqsim.NewRippleCounter(width)
		if err != nil {
			return err
		}
		for i := 0; i < pulses; i++ {
			c.Update(true)
			c.Update(false)
			fmt.Printf("pulse %3d: value = %3d  bits = %s\n", i+1, c.Uint64(), bitString(c))
		}
		return nil
	},
	SilenceUsage: true,
}

func bitString(c *seqsim.RippleCounter) string {
	b := make([]byte, c.Width())
	for i := range b {
		// most significant bit first
		if c.Bit(c.Width() - 1 - i) {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

func main() {
	rootCmd.Flags().IntVarP(&width, "width", "w", 8, "counter width in bits")
	rootCmd.Flags().IntVarP(&pulses, "pulses", "n", 16, "number of clock pulses to apply")
	if err := rootCmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
