package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/spf13/cobra"

	"github.com/nigeltao/taopick/internal/config"
	"github.com/nigeltao/taopick/internal/logging"
	"github.com/nigeltao/taopick/internal/picker"
	"github.com/nigeltao/taopick/internal/wm"
)

var (
	xu   *xgbutil.XUtil
	core *wm.EWMH
	cfg  config.Config

	cfgFile string
	debug   bool
)

// errNotPicked makes "taopick pick" exit 1 without printing anything.
var errNotPicked = errors.New("nothing picked")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNotPicked) {
			log.Println(err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "taopick",
		Short: "Keyboard driven window picking and workspace cycling for X11",
		Long: "Run with no arguments, taopick binds its keys on the root window and\n" +
			"waits for them to be pressed. The subcommands run one action and exit.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon()
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.config/taopick/config.toml)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log every key and event")
	root.AddCommand(newPickCmd(), newCycleCmd())
	return root
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if cfg, err = config.Load(cfgFile); err != nil {
		return err
	}
	if debug {
		cfg.Debug = true
	}
	logging.SetDebug(cfg.Debug)
	return nil
}

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Label the visible windows and print the one picked",
		Long: "pick labels every window on a visible workspace and waits for a key.\n" +
			"The picked window's id is printed. Escape, or any failure, exits 1.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connect(); err != nil {
				return err
			}
			cands, err := wm.Candidates(core)
			if err != nil {
				return err
			}
			p, err := newPicker()
			if err != nil {
				return err
			}
			out := p.Pick(cands)
			switch out.Kind {
			case picker.Resolved:
				fmt.Fprintf(cmd.OutOrStdout(), "0x%08x\n", out.Window)
				return nil
			case picker.Unavailable:
				log.Printf("pick: %v", out.Reason)
			}
			return errNotPicked
		},
	}
}

func newCycleCmd() *cobra.Command {
	screen := false
	cmd := &cobra.Command{
		Use:       "cycle next|prev",
		Short:     "Switch to the next or previous workspace, or screen",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"next", "prev"},
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cycleBinding(args[0], screen)
			if err != nil {
				return err
			}
			if err := connect(); err != nil {
				return err
			}
			a := actions[name]
			return a.do(core, a.arg)
		},
	}
	cmd.Flags().BoolVar(&screen, "screen", false, "cycle screens instead of workspaces")
	return cmd
}

// cycleBinding maps "taopick cycle" arguments to the equivalent key binding.
func cycleBinding(arg string, screen bool) (string, error) {
	kind := "workspace"
	if screen {
		kind = "screen"
	}
	switch arg {
	case "next", "prev":
		return kind + "_" + arg, nil
	}
	return "", fmt.Errorf("cycle: want next or prev, got %q", arg)
}

func runDaemon() error {
	if err := connect(); err != nil {
		log.Fatal(err)
	}
	initKeys()
	log.Printf("taopick: running on %s", os.Getenv("DISPLAY"))
	xevent.Main(xu)
	return nil
}
