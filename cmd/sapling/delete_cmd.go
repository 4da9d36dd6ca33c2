package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/sapling/attribute/yaml"
	treejson "github.com/pbanos/sapling/tree/json"
	"github.com/pbanos/sapling/tree/redisstore"
	"github.com/spf13/cobra"
	redis "gopkg.in/redis.v5"
)

type deleteCmdConfig struct {
	*rootCmdConfig
	metadataInput string
	redisAddr     string
	treeName      string
}

func deleteCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &deleteCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a tree saved on a redis server",
		Long:  `Remove the tree saved under the given name on a redis server`,
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
			config.Logf("Deleting tree %q from redis at %s...", config.treeName, config.redisAddr)
			rc := redis.NewClient(&redis.Options{Addr: config.redisAddr})
			defer rc.Close()
			store := redisstore.New(rc, "sapling:trees", treejson.NewEncodeDecoder(attrs))
			err = store.Delete(context.Background(), config.treeName)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Done")
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the attributes the tree was grown over (required)")
	cmd.PersistentFlags().StringVar(&(config.redisAddr), "redis", "", "address of the redis server holding the tree (required)")
	cmd.PersistentFlags().StringVarP(&(config.treeName), "name", "n", "", "name the tree was saved under on the redis server (required)")
	return cmd
}

func (dcc *deleteCmdConfig) Validate() error {
	if dcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if dcc.redisAddr == "" {
		return fmt.Errorf("required redis flag was not set")
	}
	if dcc.treeName == "" {
		return fmt.Errorf("required name flag was not set")
	}
	return nil
}
