package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bartolomej/rsm/chainspec"
	"github.com/bartolomej/rsm/config"
	"github.com/bartolomej/rsm/runtime"
	"github.com/bartolomej/rsm/tools"
)

var (
	genesisPath string
	blocksPath  string
	logLevel    string
	printDot    bool
)

func init() {
	runCmd.Flags().StringVar(&genesisPath, "genesis", "", "genesis YAML document (overrides RSM_GENESIS)")
	runCmd.Flags().StringVar(&blocksPath, "blocks", "", "blocks YAML document (overrides RSM_BLOCKS)")
	runCmd.Flags().StringVar(&logLevel, "log-level", "", "trace, debug, info, warn, error or crit (overrides RSM_LOG_LEVEL)")
	runCmd.Flags().BoolVar(&printDot, "dot", false, "print a Graphviz digraph of every executed block")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Apply genesis, execute blocks in order and print the final state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if genesisPath != "" {
			cfg.Genesis = genesisPath
		}
		if blocksPath != "" {
			cfg.Blocks = blocksPath
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		logger, err := cfg.NewLogger(os.Stderr)
		if err != nil {
			return err
		}
		log.SetDefault(logger)

		return run(cfg, cmd.OutOrStdout(), logger)
	},
}

func run(cfg config.Config, out io.Writer, logger log.Logger) error {
	genesis, blocks, err := load(cfg)
	if err != nil {
		return err
	}

	rt := runtime.New(logger)
	if err := rt.ApplyGenesis(genesis); err != nil {
		return errors.Wrap(err, "apply genesis")
	}

	for _, block := range blocks {
		report, err := rt.ExecuteBlock(block)
		if err != nil {
			return errors.Wrapf(err, "block %d", block.Header.BlockNumber)
		}
		for _, failure := range report.Failures {
			fmt.Fprintf(out, "# block %d extrinsic %d failed: %v\n", failure.BlockNumber, failure.Index, failure.Err)
		}
		if printDot {
			g := tools.Graphviz{Name: fmt.Sprintf("block%d", block.Header.BlockNumber), Block: block, Report: report}
			fmt.Fprintln(out, g.Generate())
		}
	}
	return chainspec.EncodeSnapshot(out, rt.Snapshot())
}

func load(cfg config.Config) (runtime.Genesis, []runtime.Block, error) {
	genesis, blocks := chainspec.Demo()
	var err error
	if cfg.Genesis != "" {
		if genesis, err = chainspec.ReadGenesisFile(cfg.Genesis); err != nil {
			return runtime.Genesis{}, nil, err
		}
	}
	if cfg.Blocks != "" {
		if blocks, err = chainspec.ReadBlocksFile(cfg.Blocks); err != nil {
			return runtime.Genesis{}, nil, err
		}
	}
	return genesis, blocks, nil
}
