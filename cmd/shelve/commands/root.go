package commands

import (
	"github.com/spf13/cobra"

	"shelve/internal/app"
)

var (
	projectRoot  string
	configFile   string
	execute      bool
	checkImports bool
	verbose      bool

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "shelve",
		Short: "Archive stale project files and sweep build artifacts",
		Long: "shelve reorganizes a project tree: source modules, test scripts and docs\n" +
			"not on the keep-lists move into archive/ subdirectories, and temp/cache\n" +
			"artifacts are deleted. Without --execute it only reports what it would do.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			appCtx, err = app.New(app.Config{
				Root:       projectRoot,
				ConfigFile: configFile,
				Verbose:    verbose,
			})
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if checkImports {
				return appCtx.Imports.Check()
			}
			_, err := appCtx.Cleanup.Run(execute)
			return err
		},
	}

	root.PersistentFlags().StringVar(&projectRoot, "root", ".", "project root to clean")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default <root>/shelve.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.Flags().BoolVar(&execute, "execute", false, "perform moves and deletions (default is dry run)")
	root.Flags().BoolVar(&checkImports, "check-imports", false, "run the placeholder import check and exit")

	return root.Execute()
}
