package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local data cache",
}

// cacheStatusCmd represents the cache status command
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cache location, entry count and size",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		stats, err := e.cache.Stats()
		if err != nil {
			return err
		}

		fmt.Printf("Location: %s\n", stats.Location)
		fmt.Printf("Entries:  %d\n", stats.EntryCount)
		fmt.Printf("Size:     %s\n", stats.SizeHuman())
		return nil
	},
}

// cacheClearCmd represents the cache clear command
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached responses and tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		if err := e.cache.Clear(); err != nil {
			return err
		}

		fmt.Println("Cache cleared.")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatusCmd, cacheClearCmd)
	RootCmd.AddCommand(cacheCmd)
}
