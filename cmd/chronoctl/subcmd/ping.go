package subcmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tigerater/chronoctl/kernel/api"
)

func init() {
	RootCmd.AddCommand(NewPingCommand())
}

func NewPingCommand() *cobra.Command {
	pingCmd := &PingCommand{}

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check the configured endpoint's health",
		RunE:  pingCmd.run,
	}

	cmd.Flags().BoolVar(&pingCmd.V1, "v1", false, "probe the 1.x compatibility ping endpoint as well")

	return cmd
}

type PingCommand struct {
	V1 bool
}

func (p *PingCommand) run(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	client := api.NewClient(s.endpoint)
	health, err := client.Health(cmd.Context())
	if err != nil {
		return err
	}
	logrus.Infof("health: %s (%s %s)", health.Status, health.Name, health.Version)

	if p.V1 {
		rtt, version, err := client.PingV1(5 * time.Second)
		if err != nil {
			return err
		}
		logrus.Infof("v1 ping: %s in %s", version, rtt)
	}
	return nil
}
