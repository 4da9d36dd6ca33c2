package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/attribute/yaml"
	"github.com/pbanos/sapling/instance"
	"github.com/pbanos/sapling/instance/csv"
	"github.com/pbanos/sapling/instance/mongoinstances"
	"github.com/pbanos/sapling/instance/sqlinstances"
	"github.com/pbanos/sapling/instance/sqlinstances/pgadapter"
	"github.com/pbanos/sapling/instance/sqlinstances/sqlite3adapter"
	"github.com/pbanos/sapling/tree"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
)

type testCmdConfig struct {
	*rootCmdConfig
	treeInput     string
	dataInput     string
	metadataInput string
	redisAddr     string
	treeName      string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the decisions of a grown tree against a labeled test set`,
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
			testingSet, err := config.testingSet(attrs)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			t, err := loadTree(config.treeInput, config.redisAddr, config.treeName, attrs)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			rootConfig.Logf("Testing tree against a set with %d instances...", testingSet.Count())
			successRate, errCount, err := tree.Test(t, testingSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(5)
			}
			rootConfig.Logf("Done")
			fmt.Printf("%s success rate, failed to decide %s instances\n", color.GreenString("%f", successRate), color.YellowString("%d", errCount))
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL with instances to test the tree against (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the attributes available on the input and the class attribute (required)")
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree to test will be read and parsed as JSON")
	cmd.PersistentFlags().StringVar(&(config.redisAddr), "redis", "", "address of a redis server to load the tree from instead of a file")
	cmd.PersistentFlags().StringVarP(&(config.treeName), "name", "n", "", "name the tree was saved under on the redis server (required with the redis flag)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if tcc.treeInput == "" && tcc.redisAddr == "" {
		return fmt.Errorf("required tree or redis flag was not set")
	}
	if tcc.redisAddr != "" && tcc.treeName == "" {
		return fmt.Errorf("required name flag was not set for the redis flag")
	}
	return nil
}

func (tcc *testCmdConfig) testingSet(attrs *attribute.Set) (*instance.Set, error) {
	if strings.HasPrefix(tcc.dataInput, "postgresql://") {
		tcc.Logf("Creating PostgreSQL adapter for url %s to read testing set...", tcc.dataInput)
		adapter, err := pgadapter.New(tcc.dataInput)
		if err != nil {
			return nil, err
		}
		return sqlinstances.ReadSet(context.Background(), adapter, "instances", attrs)
	}
	if strings.HasPrefix(tcc.dataInput, "mongodb://") {
		tcc.Logf("Dialing MongoDB at %s to read testing set...", tcc.dataInput)
		session, err := mgo.Dial(tcc.dataInput)
		if err != nil {
			return nil, fmt.Errorf("connecting to MongoDB at %s: %v", tcc.dataInput, err)
		}
		defer session.Close()
		collection, err := mongoinstances.Open(session, attrs)
		if err != nil {
			return nil, err
		}
		return collection.ReadSet(context.Background())
	}
	if strings.HasSuffix(tcc.dataInput, ".db") {
		tcc.Logf("Creating SQLite3 adapter for file %s to read testing set...", tcc.dataInput)
		adapter, err := sqlite3adapter.New(tcc.dataInput, 0)
		if err != nil {
			return nil, err
		}
		return sqlinstances.ReadSet(context.Background(), adapter, "instances", attrs)
	}
	if tcc.dataInput == "" {
		tcc.Logf("Reading testing set from STDIN...")
	} else {
		tcc.Logf("Opening %s to read testing set...", tcc.dataInput)
	}
	testingSet, err := csv.ReadSetFromFilePath(tcc.dataInput, attrs)
	if err != nil {
		return nil, fmt.Errorf("reading testing set: %v", err)
	}
	return testingSet, nil
}
