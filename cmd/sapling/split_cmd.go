package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/attribute/yaml"
	"github.com/pbanos/sapling/instance"
	"github.com/pbanos/sapling/instance/csv"
	"github.com/pbanos/sapling/instance/mongoinstances"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
)

type splitCmdConfig struct {
	*rootCmdConfig
	dataInput        string
	metadataInput    string
	output           string
	splitOutput      string
	splitProbability int
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set of instances into two sets",
		Long:  `Split a set of instances into an output set and a split set, assigning every instance to the split set with the given probability. Typically used to hold out a testing set before growing.`,
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
			if config.dataInput == "" {
				config.Logf("Reading input set from STDIN...")
			} else {
				config.Logf("Opening %s to read input set...", config.dataInput)
			}
			s, err := csv.ReadSetFromFilePath(config.dataInput, attrs)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			randomizer := rand.New(rand.NewSource(time.Now().UnixNano()))
			kept, split := s.Split(config.splitProbability, randomizer)
			config.Logf("Input set with %d instances was split into sets with %d and %d instances", s.Count(), kept.Count(), split.Count())
			err = config.writeSet(kept, config.output, attrs)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing output set: %v\n", err)
				os.Exit(4)
			}
			err = config.writeSet(split, config.splitOutput, attrs)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing split set: %v\n", err)
				os.Exit(5)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV file with the instances to split (defaults to STDIN)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the attributes available on the input (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a CSV file or a MongoDB (mongodb://) connection URL to write the output set to (defaults to STDOUT in CSV)")
	cmd.PersistentFlags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to a CSV file or a MongoDB (mongodb://) connection URL to write the split set to (required)")
	cmd.PersistentFlags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as a percent integer that an instance is assigned to the split set")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitProbability <= 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag must be set to an integer between 1 and 100")
	}
	return nil
}

func (scc *splitCmdConfig) writeSet(s *instance.Set, dest string, attrs *attribute.Set) error {
	if strings.HasPrefix(dest, "mongodb://") {
		scc.Logf("Dialing MongoDB at %s to write %d instances...", dest, s.Count())
		session, err := mgo.Dial(dest)
		if err != nil {
			return fmt.Errorf("connecting to MongoDB at %s: %v", dest, err)
		}
		defer session.Close()
		collection, err := mongoinstances.Open(session, attrs)
		if err != nil {
			return err
		}
		n, err := collection.Write(context.Background(), s)
		if err != nil {
			return err
		}
		scc.Logf("Wrote %d instances to MongoDB at %s", n, dest)
		return nil
	}
	var f *os.File
	var err error
	if dest == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(dest)
		if err != nil {
			return err
		}
	}
	defer f.Close()
	return csv.WriteSet(f, s)
}
