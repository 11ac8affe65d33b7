package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/depeter/shutterfolio/internal/cache"
	"github.com/depeter/shutterfolio/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the downloaded image cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached image from disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		ic, err := cache.NewImageCache(imageCacheDir(), func(img image.Image) image.Image { return img }, logger.Named("images"))
		if err != nil {
			return fmt.Errorf("open image cache: %w", err)
		}
		if err := ic.ClearDisk(); err != nil {
			return fmt.Errorf("clear image cache: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "removed", ic.CacheDir())
		return nil
	},
}

// imageCacheDir is where downloaded photos are kept between runs.
func imageCacheDir() string {
	if dir, err := config.ConfigDir(); err == nil {
		return filepath.Join(dir, "cache", "images")
	}
	return filepath.Join(os.TempDir(), "shutterfolio", "images")
}
