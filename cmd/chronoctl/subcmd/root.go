package subcmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tigerater/chronoctl/kernel/api"
	"github.com/tigerater/chronoctl/kernel/model"
	"github.com/tigerater/chronoctl/kernel/notify"
	"github.com/tigerater/chronoctl/kernel/ops"
	"github.com/tigerater/chronoctl/kernel/state"
	"github.com/tigerater/chronoctl/kernel/store"
)

var verbose bool

var RootCmd = &cobra.Command{
	Use:   "chronoctl",
	Short: "Manage time series org resources from the command line",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logrus.Fatalf("failure (%v)", err)
	}
}

// session wires a command invocation to the configured endpoint: state tree
// restored from the local cache, api client, notification center.
type session struct {
	endpoint *model.EndpointConfig
	console  *ops.Console
	local    store.LocalStore
}

func newSession() (*session, error) {
	cfg := model.GetConfig()
	endpoint, err := cfg.GetSelectedEndpoint()
	if err != nil {
		return nil, err
	}

	appState := state.NewAppState()
	local := store.NewFileStore(store.DefaultDir())
	if snapshot, err := local.Load(); err != nil {
		logrus.WithError(err).Warn("unable to load cached state, starting fresh")
	} else {
		store.Restore(snapshot, appState)
	}

	return &session{
		endpoint: endpoint,
		console:  ops.NewConsole(appState, api.NewClient(endpoint), notify.NewCenter()),
		local:    local,
	}, nil
}

// finish flushes pending notifications to the terminal and persists the
// state tree for the next invocation.
func (s *session) finish() {
	for _, n := range s.console.Notify.Drain() {
		switch n.Style {
		case notify.StyleError:
			logrus.Error(n.Message)
		case notify.StyleSuccess:
			logrus.Info(n.Message)
		default:
			logrus.Info(n.Message)
		}
	}
	if err := s.local.Save(store.Capture(s.console.State)); err != nil {
		logrus.WithError(err).Warn("unable to persist local state")
	}
}
