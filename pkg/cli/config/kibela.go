package config

import "github.com/urfave/cli/v3"

// Kibela holds Kibela source configuration
type Kibela struct {
	WebhookURL string
}

// Flags returns CLI flags for Kibela configuration
func (c *Kibela) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "kibela-webhook-url",
			Usage:       "Discord webhook URL for Kibela notifications",
			Required:    true,
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("KIBELA_WEBHOOK_URL"),
		},
	}
}
