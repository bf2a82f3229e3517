package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"orderdesk/aggregate"
	"orderdesk/export"
	"orderdesk/menu"
	"orderdesk/report"
)

const topDishes = 5

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Print the menu and the quick-add shortcuts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if err := report.Menu(out, a.catalog); err != nil {
				return err
			}
			fmt.Fprintln(out, "Quick add")
			report.HotButtons(out, menu.HotButtons(a.catalog, a.conf.HotButtons.Limit))
			return nil
		},
	}
}

func newSummaryCmd(a *app) *cobra.Command {
	var (
		intakePath string
		flags      filterFlags
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Replay an intake file and print the kitchen summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.replay(cmd, intakePath)
			if err != nil {
				return err
			}
			rows := flags.filter.Apply(sess.Rows())
			out := cmd.OutOrStdout()

			report.KPIs(out, aggregate.Summarize(rows))
			fmt.Fprintln(out, "Top dishes")
			report.TopDishes(out, aggregate.TopDishes(rows, topDishes))
			fmt.Fprintln(out, "Totals")
			report.Totals(out, aggregate.TotalsFromRows(rows))
			fmt.Fprintln(out, "Frequency")
			report.Frequency(out, aggregate.FrequencyFromRows(rows))
			fmt.Fprintln(out, "Customers")
			report.Customers(out, aggregate.PerCustomerRollup(rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&intakePath, "intake", "", "intake script (yaml)")
	_ = cmd.MarkFlagRequired("intake")
	flags.register(cmd)
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		intakePath string
		outPath    string
		flags      filterFlags
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Replay an intake file and write the xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.replay(cmd, intakePath)
			if err != nil {
				return err
			}
			rows := flags.filter.Apply(sess.Rows())
			if outPath == "" {
				outPath = filepath.Join(a.conf.Export.OutDir, a.conf.Export.FileName)
			}
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return err
			}
			file, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := export.WriteTo(file, rows, aggregate.TotalsFromRows(rows), aggregate.FrequencyFromRows(rows)); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			a.logger.Infof("exported %d rows to %s", len(rows), outPath)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d rows)\n", outPath, len(rows))
			return file.Close()
		},
	}
	cmd.Flags().StringVar(&intakePath, "intake", "", "intake script (yaml)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output workbook (default from config export.outDir/fileName)")
	_ = cmd.MarkFlagRequired("intake")
	flags.register(cmd)
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Read an exported workbook and print its totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := os.Open(inPath)
			if err != nil {
				return err
			}
			defer file.Close()
			sheets, err := export.Read(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", inPath, err)
			}
			a.logger.Infof("read %s: %d order rows", inPath, len(sheets.Orders))
			out := cmd.OutOrStdout()
			report.KPIs(out, aggregate.Summarize(sheets.Orders))
			fmt.Fprintln(out, "Totals")
			report.Totals(out, sheets.Totals)
			fmt.Fprintln(out, "Frequency")
			report.Frequency(out, sheets.Frequency)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inPath, "in", "i", "", "workbook to read")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
