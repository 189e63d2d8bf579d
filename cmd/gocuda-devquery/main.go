// gocuda-devquery prints what the device management layer sees: the visible
// CUDA devices, their properties and the peer-access matrix. Build with the
// "cuda" tag to query real hardware; without it the tool reports no devices.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/janpfeifer/must"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/gomlx/gocuda"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gocuda-devquery",
		Short: "Inspect CUDA devices as seen by the gocuda layer",
	}
	root.AddCommand(listCmd(), queryCmd(), peersCmd())
	return root
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List visible devices",
		Run: func(cmd *cobra.Command, args []string) {
			m := gocuda.Default()
			count := m.DeviceCount()
			if count == 0 {
				fmt.Println("no CUDA devices visible")
				return
			}
			table := tablewriter.NewTable(os.Stdout)
			table.Header([]string{"ID", "NAME", "CAPABILITY", "MEMORY", "SMS", "FP16"})
			for device := 0; device < count; device++ {
				prop := m.Properties(device)
				table.Append([]string{
					strconv.Itoa(device),
					prop.Name,
					fmt.Sprintf("%d.%d", prop.Major, prop.Minor),
					fmt.Sprintf("%d MiB", prop.TotalGlobalMem>>20),
					strconv.Itoa(prop.MultiProcessorCount),
					strconv.FormatBool(m.SupportsHalf(device)),
				})
			}
			table.Render()
		},
	}
}

func queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <device-id>",
		Short: "Log the full property report of one device",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			device := must.M1(strconv.Atoi(args[0]))
			gocuda.Default().DeviceQuery(device)
		},
	}
}

func peersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peers",
		Short: "Print the peer-access matrix",
		Run: func(cmd *cobra.Command, args []string) {
			m := gocuda.Default()
			pattern := must.M1(m.PeerAccessPattern())
			if len(pattern) == 0 {
				fmt.Println("no CUDA devices visible")
				return
			}
			header := []string{"FROM \\ TO"}
			for device := range pattern {
				header = append(header, strconv.Itoa(device))
			}
			table := tablewriter.NewTable(os.Stdout)
			table.Header(header)
			for device, row := range pattern {
				cells := []string{fmt.Sprintf("GPU %d", device)}
				for _, canAccess := range row {
					if canAccess {
						cells = append(cells, "+")
					} else {
						cells = append(cells, "-")
					}
				}
				table.Append(cells)
			}
			table.Render()
		},
	}
}

func main() {
	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	must.M(klogFlags.Set("logtostderr", "true"))

	goFlags := pflag.NewFlagSet("gocuda-devquery", pflag.ExitOnError)
	goFlags.AddGoFlagSet(klogFlags)

	root := rootCmd()
	root.PersistentFlags().AddFlagSet(goFlags)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
