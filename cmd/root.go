package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "androsim",
	Short: "CLI pharmacokinetic simulator for injectable compound regimens",
}

func Execute() error {
	return rootCmd.Execute()
}
