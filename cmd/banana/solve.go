package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/banana/dimacs"
	"github.com/katalvlaran/banana/ilp"
	"github.com/katalvlaran/banana/internal/cliutil"
	"github.com/katalvlaran/banana/sattww"
	"github.com/katalvlaran/banana/solve"
)

func solveCommand(logger *log.Logger) *cobra.Command {
	var ipSolver, ipFormulation, ipPrefixConstraints, verifyPath, configPath string

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "solve an OCM or TWW instance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return fmt.Errorf("%w: %v", solve.ErrParse, err)
			}

			opts, err := buildOptions(configPath, ipSolver, ipFormulation, ipPrefixConstraints, verifyPath,
				cmd.Flags().Changed("ipformulation"), cmd.Flags().Changed("ipprefixconstraints"))
			if err != nil {
				return err
			}

			ctx := cliutil.WithLogger(context.Background(), logger)

			return dispatch(ctx, data, opts)
		},
	}

	cmd.Flags().StringVar(&ipSolver, "ipsolver", "lpsolve", "ILP back-end: lpsolve|gurobi|or-tools:<sub>")
	cmd.Flags().StringVar(&ipFormulation, "ipformulation", "simple", "ILP model: simple|shorter|quadratic|vini")
	cmd.Flags().StringVar(&ipPrefixConstraints, "ipprefixconstraints", "none", "prefix cuts: none|x|y|both")
	cmd.Flags().StringVar(&verifyPath, "verify", "", "external solution file to verify against")
	cmd.Flags().StringVar(&configPath, "config", "", "optional solver.toml overriding defaults")

	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return readAll(os.Stdin)
	}

	return os.ReadFile(args[0])
}

func readAll(f *os.File) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(f)

	return buf.Bytes(), err
}

func buildOptions(configPath, ipSolver, ipFormulation, ipPrefixConstraints, verifyPath string, formulationSet, prefixSet bool) (solve.Options, error) {
	o := solve.DefaultOptions()
	if configPath != "" {
		cfg, err := cliutil.LoadConfig(configPath)
		if err != nil {
			return o, fmt.Errorf("%w: %v", solve.ErrParse, err)
		}
		if cfg.IPFormulation != "" && !formulationSet {
			ipFormulation = cfg.IPFormulation
		}
		if cfg.IPPrefixConstraints != "" && !prefixSet {
			ipPrefixConstraints = cfg.IPPrefixConstraints
		}
		if cfg.DPMaxTime > 0 {
			o.DPBudget.MaxTime = cfg.DPMaxTime
		}
		if cfg.DPMaxMemory > 0 {
			o.DPBudget.MaxMemory = cfg.DPMaxMemory
		}
	}

	variant, err := parseFormulation(ipFormulation)
	if err != nil {
		return o, err
	}
	prefix, err := parsePrefixMode(ipPrefixConstraints)
	if err != nil {
		return o, err
	}
	o.IPFormulation = variant
	o.IPPrefixConstraints = prefix
	// ipSolver only ever names the in-pack reference backend today; a real
	// lpsolve/gurobi/or-tools binding would be selected here.
	_ = ipSolver
	o.IPBackend = ilp.BranchAndBound{}
	o.SATBackend = sattww.DPLL{}
	o.VerifyPath = verifyPath

	return o, nil
}

func parseFormulation(s string) (ilp.Variant, error) {
	switch strings.ToLower(s) {
	case "simple":
		return ilp.Simple, nil
	case "shorter":
		return ilp.Shorter, nil
	case "quadratic", "vini":
		return ilp.Quadratic, nil
	default:
		return 0, fmt.Errorf("%w: unknown --ipformulation %q", solve.ErrParse, s)
	}
}

func parsePrefixMode(s string) (ilp.PrefixMode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return ilp.NoPrefixConstraints, nil
	case "x":
		return ilp.PrefixX, nil
	case "y":
		return ilp.PrefixY, nil
	case "both":
		return ilp.PrefixBoth, nil
	default:
		return 0, fmt.Errorf("%w: unknown --ipprefixconstraints %q", solve.ErrParse, s)
	}
}

// peekProblemKind scans for the `p ocr`/`p tww` line without consuming data,
// so the caller can choose the right parser before handing the full buffer
// to it.
func peekProblemKind(data []byte) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "p" {
			return fields[1], nil
		}

		break
	}

	return "", fmt.Errorf("%w: no problem line found", solve.ErrParse)
}

func dispatch(ctx context.Context, data []byte, opts solve.Options) error {
	kind, err := peekProblemKind(data)
	if err != nil {
		return err
	}

	asOptions := []solve.Option{
		solve.WithIPFormulation(opts.IPFormulation),
		solve.WithIPPrefixConstraints(opts.IPPrefixConstraints),
		solve.WithIPBackend(opts.IPBackend),
		solve.WithSATBackend(opts.SATBackend),
		solve.WithDPBudget(opts.DPBudget),
		solve.WithVerifyPath(opts.VerifyPath),
	}

	switch kind {
	case "ocr":
		g, err := dimacs.ReadOCR(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("%w: %v", solve.ErrParse, err)
		}
		order, _, err := solve.RunOCM(ctx, g, asOptions...)
		if err != nil {
			return err
		}

		return dimacs.WriteOCROrder(os.Stdout, g.NumA(), order)
	case "tww":
		g, err := dimacs.ReadTWW(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("%w: %v", solve.ErrParse, err)
		}
		pairs, _, err := solve.RunTWW(ctx, g, asOptions...)
		if err != nil {
			return err
		}

		return dimacs.WriteTWWSequence(os.Stdout, pairs)
	default:
		return fmt.Errorf("%w: unknown problem kind %q", solve.ErrParse, kind)
	}
}
