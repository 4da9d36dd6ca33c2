package main

import (
	"fmt"
	"os"

	"github.com/pbanos/sapling/attribute/yaml"
	"github.com/spf13/cobra"
)

type printCmdConfig struct {
	*rootCmdConfig
	treeInput     string
	metadataInput string
	redisAddr     string
	treeName      string
}

func printCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &printCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print a grown tree",
		Long:  `Write a grown tree to STDOUT as one line per node, pre-order`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			attrs, err := yaml.ReadAttributeSetFromFile(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, err := loadTree(config.treeInput, config.redisAddr, config.treeName, attrs)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			t.Print(os.Stdout)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the attributes the tree was grown over (required)")
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree will be read and parsed as JSON")
	cmd.PersistentFlags().StringVar(&(config.redisAddr), "redis", "", "address of a redis server to load the tree from instead of a file")
	cmd.PersistentFlags().StringVarP(&(config.treeName), "name", "n", "", "name the tree was saved under on the redis server (required with the redis flag)")
	return cmd
}

func (pcc *printCmdConfig) Validate() error {
	if pcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if pcc.treeInput == "" && pcc.redisAddr == "" {
		return fmt.Errorf("required tree or redis flag was not set")
	}
	if pcc.redisAddr != "" && pcc.treeName == "" {
		return fmt.Errorf("required name flag was not set for the redis flag")
	}
	return nil
}
