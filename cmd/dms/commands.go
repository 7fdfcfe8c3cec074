package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dms/internal/domain/models"
)

func newPingCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the server answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, cleanup, err := opts.setup()
			if err != nil {
				return err
			}
			defer cleanup()

			msg, err := c.Ping(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newTypesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List document types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, logger, cleanup, err := opts.setup()
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := c.DocumentTypes(cmd.Context())
			if err != nil {
				return err
			}
			if resp.Error != "" {
				logger.Warn("server answered fallback types", "error", resp.Error)
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: "+resp.Error)
			}
			return writeTypes(cmd.OutOrStdout(), resp.Types)
		},
	}
}

func newDesignsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "designs <type>",
		Short: "List the designs of a document type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, cleanup, err := opts.setup()
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := c.Designs(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if resp.Error != "" {
				return fmt.Errorf("list designs: %s", resp.Error)
			}
			return writeDesigns(cmd.OutOrStdout(), resp.Data)
		},
	}
}

func newVersionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "versions <formDesignId>",
		Short: "List the versions of a design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, cleanup, err := opts.setup()
			if err != nil {
				return err
			}
			defer cleanup()

			versions, err := c.Versions(cmd.Context(), models.DocumentDesignData{FormDesignID: args[0]})
			if err != nil {
				return err
			}
			return writeVersions(cmd.OutOrStdout(), versions)
		},
	}
}

func writeTypes(w io.Writer, types []models.DocumentType) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tLABEL\tDESCRIPTION")
	for _, t := range types {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Value, t.Label, t.Description)
	}
	return tw.Flush()
}

func writeDesigns(w io.Writer, designs []models.DocumentDesignData) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tVERSION\tCREATED")
	for _, d := range designs {
		id, _ := d.ResolveID()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", id, d.Name, d.Status, d.Version, d.CreatedDate)
	}
	return tw.Flush()
}

func writeVersions(w io.Writer, versions []models.DocumentDesignVersion) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tVERSION\tEFFECTIVE\tSTATUS\tENVIRONMENT\tTENANT")
	for _, v := range versions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", v.Index, v.Version, v.EffectiveDate, v.StatusText, v.EnvironmentName, v.TenantID)
	}
	return tw.Flush()
}
