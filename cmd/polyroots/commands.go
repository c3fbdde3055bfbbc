package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/njchilds90/polyroot"
)

var (
	rootsFlag string
	leadFlag  float64
	workers   int
)

var solveCmd = &cobra.Command{
	Use:   "solve [exp:coeff ...]",
	Short: "Print the real roots of a polynomial",
	Long: `Builds a polynomial from exp:coeff terms, or from --roots, and prints
its real roots in discovery order.`,
	RunE: runSolve,
}

var evalCmd = &cobra.Command{
	Use:   "eval x exp:coeff ...",
	Short: "Evaluate a polynomial at x",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runEval,
}

var diffCmd = &cobra.Command{
	Use:   "diff exp:coeff ...",
	Short: "Print the derivative of a polynomial",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDiff,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Solve JSON polynomials read from stdin, one per line",
	Long: `Each input line is a JSON object such as {"coefficients": {"3": 1, "0": -8}}.
Output is one JSON array of roots per input line, in input order.`,
	RunE: runBatch,
}

func init() {
	solveCmd.Flags().StringVar(&rootsFlag, "roots", "", "Build the polynomial from comma separated roots")
	solveCmd.Flags().Float64Var(&leadFlag, "lead", 1, "Leading coefficient used with --roots")
	batchCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent solvers (0 = config value)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	var (
		p   *polyroot.Polynomial
		err error
	)
	if rootsFlag != "" {
		roots, err := parseRoots(rootsFlag)
		if err != nil {
			return err
		}
		p = polyroot.FromRoots(leadFlag, roots...)
	} else {
		p, err = parseTerms(args)
		if err != nil {
			return err
		}
	}

	logger.Debug("solving", zap.String("poly", p.String()))
	roots, err := newFinder().Find(p)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), p.String())
	fmt.Fprintln(cmd.OutOrStdout(), "roots:", formatRoots(roots, cfg.Solver.DisplayPrecision))
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	p, err := parseTerms(args[1:])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(p.Evaluate(x), 'g', -1, 64))
	return nil
}

func runDiff(cmd *cobra.Command, args []string) error {
	p, err := parseTerms(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), p.Differentiate().String())
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var polys []*polyroot.Polynomial
	sc := bufio.NewScanner(cmd.InOrStdin())
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), max(int(cfg.Server.MaxBodyBytes), bufio.MaxScanTokenSize))
	for line := 1; sc.Scan(); line++ {
		if len(sc.Bytes()) == 0 {
			continue
		}
		p := polyroot.NewPolynomial()
		if err := json.Unmarshal(sc.Bytes(), p); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		polys = append(polys, p)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	n := workers
	if n <= 0 {
		n = cfg.Batch.Workers
	}
	results, err := newFinder().FindAll(ctx, polys, n)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, roots := range results {
		if err := enc.Encode(roots); err != nil {
			return err
		}
	}
	logger.Info("batch complete", zap.Int("polynomials", len(polys)), zap.Int("workers", n))
	return nil
}
