// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"cogentcore.org/prim/base/errors"
	"cogentcore.org/prim/logx"
	"cogentcore.org/prim/xyz"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newRootCmd returns the root command, with flags bound to the given config.
func newRootCmd(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "primview",
		Short:         "Inspect, convert and serve PRIM geometry files",
		Long:          "primview inspects, converts and serves geometry files of these types: " + strings.Join(xyz.DecoderExts(), ", "),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, cfg)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfg.Config, "config", "", "config file (default: "+ConfigFile+" in the current or home directory)")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "show info messages")
	pf.BoolVar(&cfg.VeryVerbose, "vv", false, "show debug messages, including skipped lines")
	pf.BoolVarP(&cfg.Quiet, "quiet", "q", false, "only show errors")
	pf.IntVar(&cfg.Divisions, "ndiv", 24, "initial number of segments for curved surfaces")
	pf.StringVar(&cfg.Font, "font", "Times-Roman", "initial font for text")

	root.AddCommand(infoCmd(cfg), exportCmd(cfg), spritesCmd(cfg), watchCmd(cfg), serveCmd(cfg))
	return root
}

// setup loads the config file and then applies the flags that were
// given on the command line over it, and sets up logging.
func setup(cmd *cobra.Command, cfg *Config) error {
	changed := map[string]string{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})
	file, err := homedir.Expand(cfg.Config)
	if err != nil {
		return err
	}
	if err := cfg.Load(file); err != nil {
		return err
	}
	changed["config"] = file
	for name, val := range changed {
		if err := cmd.Flags().Set(name, val); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
	logx.SetDefaultLogger()
	return nil
}

func infoCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE...",
		Short: "Print a summary of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := termenv.NewOutput(cmd.OutOrStdout())
			var errs []error
			for _, fn := range args {
				res, err := cfg.Open(fn)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				WriteInfo(out, res)
			}
			return errors.Join(errs...)
		},
	}
}

func exportCmd(cfg *Config) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the scene as YAML, JSON or TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := cfg.Open(args[0])
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return WriteExport(cmd.OutOrStdout(), res.Scene, cfg.Format)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := WriteExport(f, res.Scene, cfg.Format); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&cfg.Format, "format", "f", "yaml", "export format: "+strings.Join(Formats, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: standard output)")
	return cmd
}

func spritesCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sprites FILE DIR",
		Short: "Save the marker and label images as PNG files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := cfg.Open(args[0])
			if err != nil {
				return err
			}
			files, err := WriteSprites(res.Scene, args[1])
			for _, fn := range files {
				fmt.Fprintln(cmd.OutOrStdout(), fn)
			}
			return err
		},
	}
}

func watchCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Print a summary of the file each time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			out := termenv.NewOutput(cmd.OutOrStdout())
			show := func() {
				res, err := cfg.Open(args[0])
				if err != nil {
					slog.Error("primview: reload failed", "err", err)
					return
				}
				fmt.Fprintln(out, out.String(time.Now().Format(time.TimeOnly)).Faint())
				WriteInfo(out, res)
			}
			show()
			return Watch(ctx, args[0], cfg.Debounce, show)
		},
	}
	cmd.Flags().DurationVar(&cfg.Debounce, "debounce", 200*time.Millisecond, "time to wait for further changes before reloading")
	return cmd
}

func serveCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve the scene over HTTP, with live updates on /ws",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			sv := NewServer(cfg, args[0])
			if err := sv.Reload(); err != nil {
				return err
			}
			go func() {
				err := Watch(ctx, args[0], cfg.Debounce, func() {
					if err := sv.Reload(); err != nil {
						slog.Error("primview: reload failed", "err", err)
						return
					}
					slog.Info("primview: reloaded", "file", args[0], "clients", sv.Clients())
				})
				if err != nil {
					slog.Error("primview: watching stopped", "err", err)
				}
			}()
			hs := &http.Server{Addr: cfg.Addr, Handler: sv.Handler()}
			go func() {
				<-ctx.Done()
				sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer scancel()
				errors.Log(hs.Shutdown(sctx))
			}()
			fmt.Fprintf(cmd.OutOrStdout(), "serving %s on http://%s/scene\n", args[0], cfg.Addr)
			if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.Addr, "addr", "localhost:8080", "address to listen on")
	cmd.Flags().DurationVar(&cfg.Debounce, "debounce", 200*time.Millisecond, "time to wait for further changes before reloading")
	return cmd
}
