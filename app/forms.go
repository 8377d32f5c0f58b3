package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vinoteka/vinoteka/internal/client"
	"github.com/vinoteka/vinoteka/internal/submission"
)

const defaultBaseURL = "http://localhost:8080"

func init() { //nolint: gochecknoinits
	for _, cmd := range []*cobra.Command{contactCmd, subscribeCmd} {
		cmd.Flags().StringVar(&baseURL, "url", defaultBaseURL, "Base URL of the Vinoteka web service")
		cmd.Flags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "Request timeout")
		cmd.Flags().StringVar(&email, "email", "", "Email address")
	}

	contactCmd.Flags().StringVar(&name, "name", "", "Sender name")
	contactCmd.Flags().StringVar(&message, "message", "", "Message text")

	rootCmd.AddCommand(contactCmd, subscribeCmd)
}

var (
	baseURL string
	timeout time.Duration
	name    string
	email   string
	message string

	contactCmd = &cobra.Command{
		Use:   "contact",
		Short: "Send a contact message to a running Vinoteka",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return submitForm(cmd, "/api/contact", submission.ContactRequest{
				Name:    name,
				Email:   email,
				Message: message,
			}, "¡Mensaje enviado con éxito!")
		},
	}

	subscribeCmd = &cobra.Command{
		Use:   "subscribe",
		Short: "Subscribe an email address to the newsletter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return submitForm(cmd, "/api/newsletter", submission.NewsletterRequest{
				Email: email,
			}, "¡Gracias por suscribirte a nuestro boletín!")
		},
	}
)

func submitForm(cmd *cobra.Command, path string, payload any, successMsg string) error {
	form := client.NewForm(strings.TrimRight(baseURL, "/")+path, timeout)

	if _, err := form.Submit(payload, successMsg); err != nil {
		return err
	}

	_, msg := form.Status()
	_, err := fmt.Fprintln(cmd.OutOrStdout(), msg)

	return err
}
