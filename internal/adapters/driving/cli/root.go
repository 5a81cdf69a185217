package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/wenmin92/JsonPathNavigator/internal/adapters/driven/config/file"
	"github.com/wenmin92/JsonPathNavigator/internal/adapters/driven/corpus/filesystem"
	"github.com/wenmin92/JsonPathNavigator/internal/core/ports/driven"
	"github.com/wenmin92/JsonPathNavigator/internal/core/ports/driving"
	"github.com/wenmin92/JsonPathNavigator/internal/core/services"
	"github.com/wenmin92/JsonPathNavigator/internal/logger"
)

// version is set by main at startup.
var version = "dev"

// Injected dependencies. main wires the real implementations; tests
// swap in their own.
var (
	searchService driving.SearchService
	configStore   driven.ConfigStore
)

var (
	verboseFlag bool
	configFlag  string
	dirsFlag    []string
	filesFlag   []string
)

var rootCmd = &cobra.Command{
	Use:   "jsonpathnav",
	Short: "Search dotted key paths across JSON documents",
	Long: `jsonpathnav resolves dotted key paths (root.child.property) against a
corpus of JSON files, validates candidate paths, and completes partial
paths as they are typed.

The corpus is one or more directories of JSON files (--dir), an explicit
file list (--files), or the locations configured under corpus.dirs.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config directory (default ~/.jsonpathnav)")
	rootCmd.PersistentFlags().StringSliceVarP(&dirsFlag, "dir", "d", nil, "corpus root directory (repeatable)")
	rootCmd.PersistentFlags().StringSliceVar(&filesFlag, "files", nil, "explicit JSON files to search")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetSearchService injects the search service used by the commands.
func SetSearchService(service driving.SearchService) {
	searchService = service
}

// SetConfigStore injects the configuration store used by the commands.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

// serviceFor returns the injected search service, or assembles one over
// the corpus selected by the --dir/--files flags and the configuration.
func serviceFor(ctx context.Context) (driving.SearchService, error) {
	if searchService != nil {
		return searchService, nil
	}

	store, err := storeFor()
	if err != nil {
		return nil, err
	}

	loader, err := filesystem.NewLoader(filesystem.Options{
		Workers:    store.GetInt("corpus.workers"),
		CacheSize:  store.GetInt("corpus.cache_size"),
		IgnoreDirs: store.GetStringSlice("corpus.ignore"),
		Extensions: store.GetStringSlice("corpus.extensions"),
	})
	if err != nil {
		return nil, fmt.Errorf("create loader: %w", err)
	}

	corpus, err := corpusFor(ctx, loader, store)
	if err != nil {
		return nil, err
	}

	return services.NewSearchService(corpus), nil
}

func corpusFor(ctx context.Context, loader *filesystem.Loader, store driven.ConfigStore) (driven.Corpus, error) {
	if len(filesFlag) > 0 {
		corpus, err := loader.LoadFiles(ctx, filesFlag)
		if err != nil {
			return nil, fmt.Errorf("load files: %w", err)
		}
		return corpus, nil
	}

	roots := dirsFlag
	if len(roots) == 0 {
		if dir := os.Getenv("JSONPATHNAV_DIR"); dir != "" {
			roots = []string{dir}
		}
	}
	if len(roots) == 0 {
		roots = store.GetStringSlice("corpus.dirs")
	}
	if len(roots) == 0 {
		roots = []string{"."}
	}

	corpus, err := loader.Load(ctx, roots...)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return corpus, nil
}

func storeFor() (driven.ConfigStore, error) {
	if configStore != nil {
		return configStore, nil
	}

	dir := configFlag
	if dir == "" {
		dir = os.Getenv("JSONPATHNAV_CONFIG_DIR")
	}

	store, err := configfile.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	configStore = store
	return store, nil
}
