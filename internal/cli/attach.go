package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"essaydesk/internal/attachments"
	"essaydesk/internal/domain"
	"essaydesk/internal/picker"
)

func newAttachCmd(o *options) *cobra.Command {
	var keepCopies bool
	cmd := &cobra.Command{
		Use:   "attach FILE...",
		Short: "Run one pick over the given files and print the selection",
		Long: `attach feeds FILE... to the uploader as a single chooser result and prints
the files it keeps. Files outside the accepted types are skipped, and in
multiple mode the list is cut to --max-files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, _, _, err := loadConfig(o.configPath, wd)
			if err != nil {
				return err
			}
			o.apply(cmd, cfg)
			logrus.SetOutput(io.Discard)

			var cache *picker.Cache
			if keepCopies {
				dir := cfg.Picker.CacheDir
				if dir == "" {
					if dir, err = picker.DefaultCacheDir(); err != nil {
						return err
					}
				}
				cache = picker.NewCache(dir)
			}

			store := attachments.NewStore(cfg.Uploader.Options())
			gw := picker.NewPathGateway(args, picker.NewDescriber(cache))
			if err := store.RequestAdd(cmd.Context(), gw); err != nil {
				return err
			}
			return printFiles(cmd.OutOrStdout(), store)
		},
	}
	o.addSelectionFlags(cmd)
	cmd.Flags().BoolVar(&keepCopies, "copy", false, "copy the files into the picker cache and print the cache locations")
	return cmd
}

// printFiles writes one row per file: icon kind, name, size and locator
func printFiles(w io.Writer, store *attachments.Store) error {
	files := store.Files()
	if len(files) == 0 {
		_, err := fmt.Fprintln(w, "no documents selected")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range files {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", attachments.ClassifyIcon(f.MimeType), f.Name, sizeColumn(f), f.URI)
	}
	if opts := store.Options(); opts.AllowMultiple {
		fmt.Fprintln(tw, attachments.FormatCount(len(files), opts.MaxCount))
	}
	return tw.Flush()
}

func sizeColumn(f domain.FileDescriptor) string {
	if s := attachments.FormatSize(f.Size); s != "" {
		return s
	}
	return "-"
}
