package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"essaydesk/internal/config"
	"essaydesk/internal/eventbus"
	"essaydesk/internal/picker"
	"essaydesk/internal/ui"
	"essaydesk/internal/ui/views"
)

// options holds the flags shared by the commands
type options struct {
	configPath  string
	multiple    bool
	maxFiles    int
	types       []string
	placeholder string
	theme       string
}

func (o *options) addSelectionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVarP(&o.multiple, "multiple", "m", false, "allow several documents")
	f.IntVar(&o.maxFiles, "max-files", 1, "maximum number of documents in multiple mode")
	f.StringArrayVarP(&o.types, "type", "t", nil, "accepted MIME type, e.g. application/pdf or image/* (repeatable)")
}

// apply overrides config values with the flags the user set
func (o *options) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("multiple") {
		cfg.Uploader.Multiple = o.multiple
	}
	if f.Changed("max-files") {
		cfg.Uploader.MaxFiles = o.maxFiles
	}
	if f.Changed("type") {
		cfg.Uploader.FileTypes = o.types
	}
	if f.Lookup("placeholder") != nil && f.Changed("placeholder") {
		cfg.Uploader.Placeholder = o.placeholder
	}
	if f.Lookup("theme") != nil && f.Changed("theme") {
		cfg.UI.Theme = o.theme
	}
}

// Execute runs the command line
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "essaydesk [dir]",
		Short: "Write an assignment and attach documents from the terminal",
		Long: `essaydesk opens an assignment form with an essay field and a document
uploader. The document chooser starts browsing in dir (default: the current
directory).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runApp(cmd, o, dir)
		},
	}

	cmd.PersistentFlags().StringVarP(&o.configPath, "config", "c", "", "config file (default <dir>/"+config.FileName+" or the user config)")
	o.addSelectionFlags(cmd)
	cmd.Flags().StringVar(&o.placeholder, "placeholder", "", "dropzone prompt")
	cmd.Flags().StringVar(&o.theme, "theme", "", "colour theme: auto, light or dark")

	cmd.AddCommand(newAttachCmd(o))
	cmd.AddCommand(newConfigCmd(o))
	return cmd
}

// loadConfig resolves and loads the config for dir, reporting whether a file existed
func loadConfig(explicit, dir string) (*config.Config, config.Service, bool, error) {
	svc := config.Resolve(explicit, dir)
	_, statErr := os.Stat(svc.Path())
	exists := statErr == nil

	if explicit != "" {
		cfg, err := svc.LoadFromPath(explicit)
		if err != nil {
			return nil, nil, false, err
		}
		return cfg, svc, true, nil
	}
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, false, err
	}
	return cfg, svc, exists, nil
}

func runApp(cmd *cobra.Command, o *options, dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	if info, err := os.Stat(absDir); err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	bus := eventbus.New()
	defer bus.Close()

	// the log settings come from the config, so the load is reported once
	// the logger is listening
	cfg, svc, hasConfig, err := loadConfig(o.configPath, absDir)
	if err != nil {
		return err
	}
	o.apply(cmd, cfg)

	loaded := eventbus.ConfigLoadedEvent{}
	if hasConfig {
		loaded.Path = svc.Path()
	}
	stopLogging, err := startLogging(cfg.Log, bus, loaded)
	if err != nil {
		return err
	}
	defer stopLogging()
	config.WithBus(svc, bus)

	views.ApplyTheme(cfg.UI.Theme)

	cacheDir := cfg.Picker.CacheDir
	if cacheDir == "" {
		if cacheDir, err = picker.DefaultCacheDir(); err != nil {
			return err
		}
	}
	cache := picker.NewCache(cacheDir)
	defer func() {
		if err := cache.Purge(); err != nil {
			logrus.WithError(err).Warn("picker: cache purge failed")
		}
	}()

	startDir := cfg.Picker.StartDir
	if startDir == "" {
		startDir = absDir
	}
	gw := picker.NewDialogGateway(startDir, cfg.Picker.ShowHidden, picker.NewDescriber(cache))

	ctx := cmd.Context()
	model := ui.NewModel(ctx, bus, cfg, gw)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	model.SetProgram(p)

	forward := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	defer bus.Subscribe(eventbus.EventConfigSaved, forward)()

	logrus.WithFields(logrus.Fields{
		"dir":      absDir,
		"multiple": cfg.Uploader.Multiple,
		"types":    cfg.Uploader.FileTypes,
	}).Info("starting essaydesk")
	bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: hasConfig})

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	if m, ok := final.(*ui.Model); ok {
		a := m.Assignment()
		logrus.WithFields(logrus.Fields{
			"essay_chars": len(a.Essay),
			"files":       len(a.Files),
		}).Info("essaydesk exited")
	}
	return nil
}
