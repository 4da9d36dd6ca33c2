package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/attribute/yaml"
	"github.com/pbanos/sapling/instance"
	"github.com/pbanos/sapling/instance/csv"
	"github.com/pbanos/sapling/instance/mongoinstances"
	"github.com/pbanos/sapling/instance/sqlinstances"
	"github.com/pbanos/sapling/instance/sqlinstances/pgadapter"
	"github.com/pbanos/sapling/instance/sqlinstances/sqlite3adapter"
	"github.com/pbanos/sapling/tree"
	treejson "github.com/pbanos/sapling/tree/json"
	"github.com/pbanos/sapling/tree/redisstore"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
	redis "gopkg.in/redis.v5"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	output        string
	redisAddr     string
	treeName      string
	maxDBConns    int
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of labeled instances",
		Long:  `Grow a decision tree from a set of labeled instances to predict their class attribute.`,
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
			trainingSet, err := config.trainingSet(attrs)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Growing tree from a set with %d instances and %d attributes to predict %s ...", trainingSet.Count(), attrs.Len()-1, attrs.ClassAttribute().Name())
			t, err := tree.Grow(trainingSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
			err = config.outputTree(t, attrs)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL with instances to grow the tree from (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the attributes available on the input and the class attribute to predict (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the grown tree will be written in JSON format (defaults to STDOUT)")
	cmd.PersistentFlags().StringVar(&(config.redisAddr), "redis", "", "address of a redis server to save the grown tree on instead of a file")
	cmd.PersistentFlags().StringVarP(&(config.treeName), "name", "n", "", "name to save the grown tree under on the redis server (required with the redis flag)")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if gcc.redisAddr != "" && gcc.treeName == "" {
		return fmt.Errorf("required name flag was not set for the redis flag")
	}
	return nil
}

func (gcc *growCmdConfig) trainingSet(attrs *attribute.Set) (*instance.Set, error) {
	if strings.HasPrefix(gcc.dataInput, "postgresql://") {
		return gcc.postgreSQLTrainingSet(attrs)
	}
	if strings.HasPrefix(gcc.dataInput, "mongodb://") {
		return gcc.mongoDBTrainingSet(attrs)
	}
	if strings.HasSuffix(gcc.dataInput, ".db") {
		return gcc.sqlite3TrainingSet(attrs)
	}
	if gcc.dataInput == "" {
		gcc.Logf("Reading training set from STDIN...")
	} else {
		gcc.Logf("Opening %s to read training set...", gcc.dataInput)
	}
	trainingSet, err := csv.ReadSetFromFilePath(gcc.dataInput, attrs)
	if err != nil {
		return nil, fmt.Errorf("reading training set: %v", err)
	}
	return trainingSet, nil
}

func (gcc *growCmdConfig) sqlite3TrainingSet(attrs *attribute.Set) (*instance.Set, error) {
	gcc.Logf("Creating SQLite3 adapter for file %s to read training set...", gcc.dataInput)
	adapter, err := sqlite3adapter.New(gcc.dataInput, gcc.maxDBConns)
	if err != nil {
		return nil, err
	}
	gcc.Logf("Reading instances over SQLite3 adapter for file %s...", gcc.dataInput)
	return sqlinstances.ReadSet(context.Background(), adapter, "instances", attrs)
}

func (gcc *growCmdConfig) postgreSQLTrainingSet(attrs *attribute.Set) (*instance.Set, error) {
	gcc.Logf("Creating PostgreSQL adapter for url %s to read training set...", gcc.dataInput)
	adapter, err := pgadapter.New(gcc.dataInput)
	if err != nil {
		return nil, err
	}
	gcc.Logf("Reading instances over PostgreSQL adapter for url %s...", gcc.dataInput)
	return sqlinstances.ReadSet(context.Background(), adapter, "instances", attrs)
}

func (gcc *growCmdConfig) mongoDBTrainingSet(attrs *attribute.Set) (*instance.Set, error) {
	gcc.Logf("Dialing MongoDB at %s to read training set...", gcc.dataInput)
	session, err := mgo.Dial(gcc.dataInput)
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB at %s: %v", gcc.dataInput, err)
	}
	defer session.Close()
	collection, err := mongoinstances.Open(session, attrs)
	if err != nil {
		return nil, err
	}
	return collection.ReadSet(context.Background())
}

func (gcc *growCmdConfig) outputTree(t tree.Tree, attrs *attribute.Set) error {
	if gcc.redisAddr != "" {
		gcc.Logf("Saving tree %q on redis at %s...", gcc.treeName, gcc.redisAddr)
		rc := redis.NewClient(&redis.Options{Addr: gcc.redisAddr})
		defer rc.Close()
		store := redisstore.New(rc, "sapling:trees", treejson.NewEncodeDecoder(attrs))
		return store.Save(context.Background(), gcc.treeName, t)
	}
	var f *os.File
	var err error
	if gcc.output == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(gcc.output)
		if err != nil {
			return err
		}
	}
	defer f.Close()
	return treejson.WriteTree(f, t, attrs)
}
