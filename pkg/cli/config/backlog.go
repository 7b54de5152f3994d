package config

import "github.com/urfave/cli/v3"

// Backlog holds Backlog source configuration
type Backlog struct {
	BaseURL       string
	ProjectPrefix string
	WebhookURL    string
}

// Flags returns CLI flags for Backlog configuration
func (c *Backlog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backlog-base-url",
			Usage:       "Backlog space base URL used to build issue links",
			Required:    true,
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("BACKLOG_BASE_URL"),
		},
		&cli.StringFlag{
			Name:        "backlog-project-prefix",
			Usage:       "Backlog project key prefix (e.g. PROJ)",
			Required:    true,
			Destination: &c.ProjectPrefix,
			Sources:     cli.EnvVars("PROJECT_PREFIX"),
		},
		&cli.StringFlag{
			Name:        "backlog-webhook-url",
			Usage:       "Discord webhook URL for Backlog notifications",
			Required:    true,
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("BACKLOG_WEBHOOK_URL"),
		},
	}
}
