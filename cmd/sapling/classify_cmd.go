package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pbanos/sapling/attribute"
	"github.com/pbanos/sapling/attribute/yaml"
	"github.com/pbanos/sapling/instance"
	"github.com/pbanos/sapling/tree"
	treejson "github.com/pbanos/sapling/tree/json"
	"github.com/pbanos/sapling/tree/redisstore"
	"github.com/spf13/cobra"
	redis "gopkg.in/redis.v5"
)

type classifyCmdConfig struct {
	*rootCmdConfig
	treeInput     string
	metadataInput string
	redisAddr     string
	treeName      string
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify an instance answering questions",
		Long:  `Use a grown tree to decide the class value for an instance, answering a question per attribute`,
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
			in, err := readInstance(os.Stdin, attrs)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			decision, err := t.Decide(attrs, in)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			fmt.Printf("The %s of the instance is %s\n", attrs.ClassAttribute().Name(), color.GreenString(decision))
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the attributes instances conform to (required)")
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree will be read and parsed as JSON")
	cmd.PersistentFlags().StringVar(&(config.redisAddr), "redis", "", "address of a redis server to load the tree from instead of a file")
	cmd.PersistentFlags().StringVarP(&(config.treeName), "name", "n", "", "name the tree was saved under on the redis server (required with the redis flag)")
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if ccc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if ccc.treeInput == "" && ccc.redisAddr == "" {
		return fmt.Errorf("required tree or redis flag was not set")
	}
	if ccc.redisAddr != "" && ccc.treeName == "" {
		return fmt.Errorf("required name flag was not set for the redis flag")
	}
	return nil
}

/*
readInstance reads a value for every attribute of the given set except
the class attribute from the given reader, requesting each one on
stdout and rejecting values outside the attribute's legal values. The
class attribute's value, the one being decided, is left empty.
*/
func readInstance(r *os.File, attrs *attribute.Set) (instance.Instance, error) {
	scanner := bufio.NewScanner(r)
	values := make([]string, attrs.Len())
	for i, a := range attrs.Attributes() {
		if i == attrs.ClassIndex() {
			continue
		}
		fmt.Printf("Please provide the instance's %s:\n(valid values are %v)\n", a.Name(), a.Values())
		for {
			if !scanner.Scan() {
				err := scanner.Err()
				if err != nil {
					return instance.Instance{}, err
				}
				return instance.Instance{}, fmt.Errorf("EOF when requesting value for %s", a.Name())
			}
			line := scanner.Text()
			if ok, _ := a.Valid(line); ok {
				values[i] = line
				break
			}
			fmt.Printf("%s is not a valid value for the instance's %s. Please provide one of %v.\n", color.RedString(line), a.Name(), a.Values())
		}
	}
	return instance.New(values), nil
}

func loadTree(filepath, redisAddr, treeName string, attrs *attribute.Set) (tree.Tree, error) {
	if redisAddr != "" {
		rc := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer rc.Close()
		store := redisstore.New(rc, "sapling:trees", treejson.NewEncodeDecoder(attrs))
		t, err := store.Load(context.Background(), treeName)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, fmt.Errorf("no tree saved under name %q on redis at %s", treeName, redisAddr)
		}
		return t, nil
	}
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %v", filepath, err)
	}
	defer f.Close()
	t, err := treejson.ReadTree(f, attrs)
	if err != nil {
		err = fmt.Errorf("parsing tree in JSON from %s: %v", filepath, err)
	}
	return t, err
}
