package cmd

import (
	"io"
	"os"
	"time"

	"github.com/davidcollom/dbcost/pkg/catalog"
	"github.com/davidcollom/dbcost/pkg/catalog/source"
	"github.com/davidcollom/dbcost/pkg/logger"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	importOutput        string
	importMerge         string
	importInstanceTypes []string
	importRegions       []string
	importEngines       []string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Build catalog files from provider data",
}

var importEC2Cmd = &cobra.Command{
	Use:   "ec2",
	Short: "Build a catalog from the EC2 instance data",
	Long:  `Build a catalog of self-managed databases on EC2, priced on demand from the EC2 instance data.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		generic, err := source.Get("ec2")
		if err != nil {
			logger.Fatalf("[!] %s", err)
		}
		src, ok := generic.(*source.EC2Source)
		if !ok {
			logger.Fatalf("[!] Unexpected %s source", generic.Name())
		}
		src.InstanceTypes = importInstanceTypes
		src.Regions = importRegions
		if len(importEngines) > 0 {
			src.Engines = nil
			for _, engine := range importEngines {
				if !catalog.ValidEngineType(catalog.EngineType(engine)) {
					logger.Fatalf("[!] Invalid engine %s", engine)
				}
				src.Engines = append(src.Engines, catalog.EngineType(engine))
			}
		}

		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Importing..."),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetWidth(15),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionThrottle(2*time.Second),
		)
		src.Progress = bar

		instances, err := src.Instances()
		if err != nil {
			logger.Fatalf("[!] Could not import %s instances: %s", src.Name(), err)
		}
		_ = bar.Finish()

		if importMerge != "" {
			existing, err := (&source.FileSource{Path: importMerge}).Instances()
			if err != nil {
				logger.Fatalf("[!] %s", err)
			}
			instances = source.Merge(existing, instances)
		}

		if err := writeCatalog(importOutput, instances); err != nil {
			logger.Fatalf("[!] %s", err)
		}
		logger.Infof("Wrote %d instances to %s", len(instances), importOutput)
	},
}

func writeCatalog(path string, instances []*catalog.Instance) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "could not create %s", path)
		}
		defer f.Close()
		w = f
	}
	return source.Save(w, instances)
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.AddCommand(importEC2Cmd)
	importEC2Cmd.Flags().StringVarP(&importOutput, "output", "o", "catalog.json", "Catalog file to write, - for stdout")
	importEC2Cmd.Flags().StringVar(&importMerge, "merge", "", "Catalog file whose instances are kept unless imported again")
	importEC2Cmd.Flags().StringArrayVarP(&importInstanceTypes, "instance-type", "t", []string{}, "Regex patterns of the EC2 instance types to import")
	importEC2Cmd.Flags().StringArrayVarP(&importRegions, "region", "r", []string{}, "Region codes to import")
	importEC2Cmd.Flags().StringSliceVarP(&importEngines, "engine", "e", []string{}, "Database engines to price (MYSQL, POSTGRES, ORACLE, SQLSERVER)")
}
