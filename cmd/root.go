package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"orderdesk/aggregate"
	"orderdesk/config"
	"orderdesk/intake"
	"orderdesk/logger"
	"orderdesk/menu"
	"orderdesk/session"
)

type app struct {
	configPath string
	conf       config.Config
	logger     *log.Logger
	catalog    *menu.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{logger: log.New()}
	root := &cobra.Command{
		Use:               "orderdesk",
		Short:             "Holiday order intake: menu, order summaries and kitchen export",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to config.yaml (./config.yaml if present, else built-in defaults)")
	root.AddCommand(
		newMenuCmd(a),
		newSummaryCmd(a),
		newExportCmd(a),
		newImportCmd(a),
	)
	return root
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	a.conf = config.Default()
	path := a.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultPath); err == nil {
			path = config.DefaultPath
		}
	}
	if path != "" {
		conf, err := config.ParseConfig(path)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		a.conf = conf
	}
	if err := logger.Setup(a.conf, a.logger); err != nil {
		return err
	}
	if a.conf.Menu.File == "" {
		a.catalog = menu.Default()
		return nil
	}
	catalog, err := menu.Load(a.conf.Menu.File)
	if err != nil {
		return fmt.Errorf("menu %s: %w", a.conf.Menu.File, err)
	}
	a.catalog = catalog
	a.logger.Infof("loaded menu %s: %d categories", a.conf.Menu.File, catalog.Len())
	return nil
}

// replay builds a fresh session from an intake script. Rejected entries are
// listed on stderr and do not stop the run.
func (a *app) replay(cmd *cobra.Command, path string) (*session.Session, error) {
	script, err := intake.Load(path)
	if err != nil {
		return nil, err
	}
	sess := session.New(a.catalog, a.logger)
	res := intake.Replay(sess, script)
	for _, r := range res.Rejected {
		fmt.Fprintf(cmd.ErrOrStderr(), "rejected %s\n", r)
	}
	if a.conf.Dumps.RejectsFile != "" {
		d := intake.NewFileDumper(a.conf.Dumps.RejectsFile, int64(a.conf.Dumps.MaxDumpSize))
		if err := d.Dump(res.Rejected); err != nil {
			return nil, fmt.Errorf("dump rejects to %s: %w", d.GetPath(), err)
		}
	}
	return sess, nil
}

type filterFlags struct {
	filter aggregate.Filter
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.filter.Customer, "customer", "", "only rows for this customer name")
	cmd.Flags().StringVar(&f.filter.Category, "category", "", "only rows in this menu category")
	cmd.Flags().StringVar(&f.filter.Dish, "dish", "", "only rows for this dish")
	cmd.Flags().IntVar(&f.filter.MinOrderID, "from", 0, "lowest order id")
	cmd.Flags().IntVar(&f.filter.MaxOrderID, "to", 0, "highest order id")
}
