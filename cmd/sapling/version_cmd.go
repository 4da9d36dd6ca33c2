package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in sapling's version
	VersionMajor = 0
	// VersionMinor is the minor number in sapling's version
	VersionMinor = 0
	// VersionPatch is the patch number in sapling's version
	VersionPatch = 1
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version of sapling",
		Long:  `Show the version of the sapling tool being run`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sapling version %d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
