package app

import (
	"context"
	"fmt"

	"github.com/calloway/showroom/internal/admin"
	"github.com/calloway/showroom/internal/catalog"
	"github.com/calloway/showroom/internal/config"
	"github.com/calloway/showroom/internal/logging"
	"github.com/calloway/showroom/internal/prefs"
	"github.com/calloway/showroom/internal/store"
	"github.com/calloway/showroom/internal/ui"
)

// Options configure either showroom surface.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/showroom/prefs.toml
}

// RunStorefront boots the read-only catalog browser until the context is
// cancelled or the user quits.
func RunStorefront(ctx context.Context, opts Options) error {
	cfg, s, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	uiOpts := ui.StorefrontOptions{
		Store:     s,
		Changes:   s.Subscribe(),
		Currency:  cfg.Currency,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Category:  userPrefs.Category,
		Sort:      catalog.SortKey(userPrefs.Sort),
	}
	return ui.RunStorefront(uiOpts)
}

// RunAdmin boots the product editor until the context is cancelled or the
// user quits.
func RunAdmin(ctx context.Context, opts Options) error {
	cfg, s, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	uiOpts := ui.AdminOptions{
		Store:     s,
		Pipeline:  admin.New(s, nil),
		Changes:   s.Subscribe(),
		Currency:  cfg.Currency,
		ThemeName: userPrefs.Theme,
		Username:  cfg.Admin.Username,
		Password:  cfg.Admin.Password,
	}
	return ui.RunAdmin(uiOpts)
}

// bootstrap performs the shared startup sequence: load config, point file
// logging at the data dir, open the product store, and start the change
// watcher.
func bootstrap(ctx context.Context, opts Options) (config.Config, *store.Store, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}

	logging.SetDir(cfg.LogDir())

	s := store.New(cfg.DataDir)
	s.Load()
	if err := s.Watch(ctx); err != nil {
		return config.Config{}, nil, fmt.Errorf("watch products: %w", err)
	}
	return cfg, s, nil
}
