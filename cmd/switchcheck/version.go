// Version command for the switchcheck CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retroctrl/platform-switch/pkg/platformswitch"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the switchcheck version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("switchcheck", platformswitch.Version)
	},
}
