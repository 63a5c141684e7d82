// Copyright (c) 2026 ROBDD contributors
//
// MIT License

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	robdd "github.com/OBDDimal/OBDDimal-sub000"
)

var dotCmd = &cobra.Command{
	Use:   "dot <dimacs-file> <output.dot>",
	Short: "Build a BDD from a DIMACS CNF file and render it as Graphviz dot",
	Args:  cobra.ExactArgs(2),
	RunE:  runDot,
}

func init() {
	rootCmd.AddCommand(dotCmd)
}

func runDot(c *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	cnf, err := robdd.ParseDIMACS(in)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	m, root, err := robdd.BuildFromCNF(cnf, buildOptions(nil)...)
	if err != nil {
		return fmt.Errorf("building BDD: %w", err)
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer out.Close()

	if err := m.WriteDot(out, root); err != nil {
		return fmt.Errorf("writing dot: %w", err)
	}
	fmt.Fprintf(c.OutOrStdout(), "wrote %s\n", args[1])
	return nil
}

var loadCmd = &cobra.Command{
	Use:   "load <dddmp-file>",
	Short: "Load a DDDMP file and print the satisfying-assignment count of each root",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(c *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	m, roots, err := robdd.LoadDDDMP(f)
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[0], err)
	}

	for i, root := range roots {
		fmt.Fprintf(c.OutOrStdout(), "root[%d] sat_count: %s\n", i, m.SatCount(root).String())
	}
	return nil
}

var saveCmd = &cobra.Command{
	Use:   "save <dimacs-file> <output.bdd>",
	Short: "Build a BDD from a DIMACS CNF file and write it in the custom .bdd text format",
	Args:  cobra.ExactArgs(2),
	RunE:  runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().Bool("stats", false, "include a per-node statistics table")
}

func runSave(c *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	cnf, err := robdd.ParseDIMACS(in)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	m, root, err := robdd.BuildFromCNF(cnf, buildOptions(nil)...)
	if err != nil {
		return fmt.Errorf("building BDD: %w", err)
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer out.Close()

	withStats, _ := c.Flags().GetBool("stats")
	if err := m.SaveBDD(out, withStats, root); err != nil {
		return fmt.Errorf("writing %s: %w", args[1], err)
	}
	fmt.Fprintf(c.OutOrStdout(), "wrote %s\n", args[1])
	return nil
}
