package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/impacto/site/cmd/impacto-cli/internal/output"
	"github.com/impacto/site/internal/leads"
)

var leadCmd = &cobra.Command{
	Use:   "lead",
	Short: "Talk to the lead backend",
}

var (
	leadNombre string
	leadEmail  string
	leadFormat string
)

var leadSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Create a lead, exactly like the contact form does",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := leads.CreateLeadRequest{Nombre: leadNombre, Email: leadEmail}.Normalize()
		if err := req.Validate(); err != nil {
			return fmt.Errorf("invalid lead: %w", err)
		}

		lead, err := newLeadClient().CreateLead(cmd.Context(), req)
		if err != nil {
			var se *leads.HTTPStatusError
			if errors.As(err, &se) {
				return fmt.Errorf("backend rejected the lead with status %d", se.StatusCode)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Lead #%d created for %s <%s>\n", lead.ID, lead.Nombre, lead.Email)
		return nil
	},
}

var leadListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every lead stored by the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(leadFormat)
		if err != nil {
			return err
		}
		list, err := newLeadClient().ListLeads(cmd.Context())
		if err != nil {
			return err
		}
		return printLeads(cmd.OutOrStdout(), list, format)
	},
}

func init() {
	leadSubmitCmd.Flags().StringVar(&leadNombre, "nombre", "", "contact name")
	leadSubmitCmd.Flags().StringVar(&leadEmail, "email", "", "contact email")
	_ = leadSubmitCmd.MarkFlagRequired("nombre")
	_ = leadSubmitCmd.MarkFlagRequired("email")

	leadListCmd.Flags().StringVarP(&leadFormat, "output", "o", "table", "output format (table|json)")

	leadCmd.AddCommand(leadSubmitCmd, leadListCmd)
	rootCmd.AddCommand(leadCmd)
}

func newLeadClient() *leads.Client {
	var opts []leads.ClientOption
	if d := viper.GetDuration(keyTimeout); d > 0 {
		opts = append(opts, leads.WithTimeout(d))
	}
	return leads.NewClient(viper.GetString(keyAPIURL), opts...)
}

func printLeads(w io.Writer, list []leads.Lead, format output.Format) error {
	if format == output.FormatJSON {
		if list == nil {
			list = []leads.Lead{}
		}
		return output.JSON(w, struct {
			Leads []leads.Lead `json:"leads"`
			Count int          `json:"count"`
		}{Leads: list, Count: len(list)})
	}

	rows := make([][]string, len(list))
	for i, l := range list {
		rows[i] = []string{strconv.Itoa(l.ID), output.Truncate(l.Nombre, 30), l.Email}
	}
	return output.Table(w, []string{"ID", "NOMBRE", "EMAIL"}, rows, "No leads found")
}
