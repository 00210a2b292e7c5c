package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mazehunt/mazehunt/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server so players can connect and play remotely.

Players connect with a regular SSH client:
  ssh -p 23234 localhost

Examples:
  mazehunt serve
  mazehunt serve --ssh :2222
  mazehunt serve --ssh 0.0.0.0:23234 --host-key /etc/mazehunt/host_key`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (default: ~/.mazehunt/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect idle sessions after this duration")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdleTimeout,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	return server.ListenAndServe()
}
