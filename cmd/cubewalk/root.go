// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cubewalk"
	"github.com/katalvlaran/cubewalk/notes"
)

// errNoTopology is returned when a topology dump is asked of a flat walk.
var errNoTopology = errors.New("the flat variant does not fold the net")

// newRootCmd wires the command tree. Each call returns fresh state so tests
// can execute it repeatedly.
func newRootCmd() *cobra.Command {
	cfg := defaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:          "cubewalk",
		Short:        "Walk a path across a folded cube net",
		SilenceUsage: true,
	}
	bindFlags(root.PersistentFlags(), &cfg, &cfgPath)

	run := &cobra.Command{
		Use:   "run NOTES",
		Short: "Replay the path in NOTES and print the password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := load(cfgPath, cmd.Flags(), &cfg); err != nil {
				return err
			}
			return runWalk(cmd, cfg, args[0])
		},
	}
	bindRunFlags(run.Flags(), &cfg)

	topo := &cobra.Command{
		Use:   "topology NOTES",
		Short: "Print how the faces of the net in NOTES meet once folded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := load(cfgPath, cmd.Flags(), &cfg); err != nil {
				return err
			}
			return runTopology(cmd, cfg, args[0])
		},
	}

	root.AddCommand(run, topo)

	return root
}

// solve loads the notes and walks them with cfg.
func solve(cmd *cobra.Command, cfg config, path string) (*cubewalk.Result, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(cmd.ErrOrStderr())

	n, err := notes.Load(path)
	if err != nil {
		return nil, err
	}
	opts := []cubewalk.Option{cubewalk.WithLogger(logger.WithField("notes", path))}
	if cfg.FaceSize != 0 {
		opts = append(opts, cubewalk.WithFaceSize(cfg.FaceSize))
	}
	if cfg.Flat {
		opts = append(opts, cubewalk.WithVariant(cubewalk.Flat))
	}

	return cubewalk.Solve(n, opts...)
}

func runWalk(cmd *cobra.Command, cfg config, path string) error {
	res, err := solve(cmd, cfg, path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if cfg.Trail {
		fmt.Fprintln(out, res.Render())
	}
	if cfg.DumpTopology {
		if err := dumpTopology(cmd, res); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Password: %d\n", res.Password())

	return nil
}

func runTopology(cmd *cobra.Command, cfg config, path string) error {
	cfg.Flat = false
	res, err := solve(cmd, cfg, path)
	if err != nil {
		return err
	}

	return dumpTopology(cmd, res)
}

func dumpTopology(cmd *cobra.Command, res *cubewalk.Result) error {
	if res.Topology == nil {
		return errNoTopology
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(res.Topology); err != nil {
		return fmt.Errorf("encode topology: %w", err)
	}

	return enc.Close()
}
