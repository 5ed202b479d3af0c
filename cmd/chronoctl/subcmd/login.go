package subcmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tigerater/chronoctl/kernel/api"
	"github.com/tigerater/chronoctl/kernel/model"
	"golang.org/x/term"
)

func init() {
	RootCmd.AddCommand(NewLoginCommand())
}

func NewLoginCommand() *cobra.Command {
	loginCmd := &LoginCommand{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Configure an endpoint and verify the connection",
		RunE:  loginCmd.login,
	}

	cmd.Flags().StringVarP(&loginCmd.Name, "name", "n", "default", "endpoint name")
	cmd.Flags().StringVarP(&loginCmd.URL, "url", "u", "", "backend base url")
	cmd.Flags().StringVar(&loginCmd.Org, "org", "", "organization name")
	cmd.Flags().StringVar(&loginCmd.OrgID, "org-id", "", "organization id")
	cmd.Flags().StringVarP(&loginCmd.Token, "token", "t", "", "api token (prompted when omitted)")
	cmd.Flags().StringVar(&loginCmd.Region, "region", "", "aws region for s3 exports")
	cmd.MarkFlagRequired("url")
	cmd.MarkFlagRequired("org-id")

	return cmd
}

type LoginCommand struct {
	Name   string
	URL    string
	Org    string
	OrgID  string
	Token  string
	Region string
}

func (l *LoginCommand) login(cmd *cobra.Command, args []string) error {
	token := l.Token
	if token == "" {
		fmt.Print("token: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = string(raw)
	}

	endpoint := &model.EndpointConfig{
		URL:    l.URL,
		Token:  token,
		Org:    l.Org,
		OrgID:  l.OrgID,
		Region: l.Region,
	}

	health, err := api.NewClient(endpoint).Health(context.Background())
	if err != nil {
		return fmt.Errorf("endpoint check failed: %w", err)
	}
	logrus.Infof("endpoint is %s (%s %s)", health.Status, health.Name, health.Version)

	cfg, err := model.LoadConfig(model.ConfigPath())
	if err != nil {
		return err
	}
	cfg.Endpoints[l.Name] = endpoint
	cfg.Default = l.Name
	if err := cfg.Save(model.ConfigPath()); err != nil {
		return err
	}

	logrus.Infof("endpoint '%s' saved to %s", l.Name, model.ConfigPath())
	return nil
}
