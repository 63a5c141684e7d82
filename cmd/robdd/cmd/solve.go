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

var solveCmd = &cobra.Command{
	Use:   "solve <dimacs-file>",
	Short: "Build a BDD from a DIMACS CNF file and print its satisfying-assignment count",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().Bool("stats", false, "print node-table and cache statistics after solving")
}

func runSolve(c *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	cnf, err := robdd.ParseDIMACS(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	var initialOrder []robdd.VarID
	if order := v.GetString("order"); order != "none" {
		heuristic, err := parseStaticOrdering(order)
		if err != nil {
			return err
		}
		initialOrder = robdd.ApplyStaticOrder(cnf, heuristic)
	}

	m, root, err := robdd.BuildFromCNF(cnf, buildOptions(initialOrder)...)
	if err != nil {
		return fmt.Errorf("building BDD: %w", err)
	}

	fmt.Fprintf(c.OutOrStdout(), "variables:    %d\n", cnf.NumVars)
	fmt.Fprintf(c.OutOrStdout(), "clauses:      %d\n", len(cnf.Clauses))
	fmt.Fprintf(c.OutOrStdout(), "sat_count:    %s\n", m.SatCount(root).String())
	fmt.Fprintf(c.OutOrStdout(), "active_nodes: %d\n", m.CountActive())

	if ok, _ := c.Flags().GetBool("stats"); ok {
		fmt.Fprintln(c.OutOrStdout(), m.Stats())
	}
	return nil
}

func parseStaticOrdering(name string) (robdd.StaticOrdering, error) {
	switch name {
	case "random":
		return robdd.RandomOrdering, nil
	case "force":
		return robdd.ForceOrdering, nil
	default:
		return 0, fmt.Errorf("unknown --order %q (valid: none, random, force)", name)
	}
}

func buildOptions(initialOrder []robdd.VarID) []robdd.Option {
	opts := robdd.OptionsFromViper(v)
	if initialOrder != nil {
		opts = append(opts, robdd.WithInitialOrder(initialOrder))
	}
	return opts
}
