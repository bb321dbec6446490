package main

import (
	goflag "flag"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/croian/patchingo"
)

func main() {
	klog.InitFlags(nil)
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	root := &cobra.Command{
		Use:          "patchingo",
		Short:        "Signature scanning over the current process image",
		SilenceUsage: true,
	}
	root.PersistentFlags().AddFlagSet(pflag.CommandLine)
	root.AddCommand(newScanCommand(), newSymbolsCommand())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newScanCommand() *cobra.Command {
	var module string
	var all bool
	cmd := &cobra.Command{
		Use:   "scan PATTERN",
		Short: "Scan the code section for a hex+wildcard signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			region, err := patchingo.NewScanner(nil).Snapshot(module)
			if err != nil {
				return err
			}
			if all {
				addrs, err := region.ScanAll(args[0])
				if err != nil {
					return err
				}
				for _, a := range addrs {
					fmt.Printf("%#x\n", a)
				}
				return nil
			}
			addr, err := region.ScanFirst(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%#x\n", addr)
			return nil
		},
	}
	cmd.Flags().StringVar(&module, "module", "", "module to scan (default: own image)")
	cmd.Flags().BoolVar(&all, "all", false, "report every match")
	return cmd
}

func newSymbolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols FILE",
		Short: "Dump the symbol table of an object file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			syms, err := patchingo.ModuleSymbols(args[0])
			if err != nil {
				return err
			}
			names := make([]string, 0, len(syms))
			for name := range syms {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%#x\t%s\n", syms[name], name)
			}
			return nil
		},
	}
}
