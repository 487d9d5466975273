package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/NumeneraItems_Go/internal/config"
	"github.com/osse101/NumeneraItems_Go/internal/i18n"
	"github.com/osse101/NumeneraItems_Go/internal/item"
	"github.com/osse101/NumeneraItems_Go/internal/library"
	"github.com/osse101/NumeneraItems_Go/internal/validation"
)

// LoadLibrary builds the item library from ITEM_PACK_PATH. Without a path the
// store stays empty and /readyz reports the service as not ready.
func LoadLibrary(ctx context.Context, cfg *config.Config, bundle *i18n.Bundle, schemas validation.SchemaValidator) (*library.Store, error) {
	store := library.NewStore()
	if cfg.PackPath == "" {
		slog.Warn(LogMsgNoPackPath)
		return store, nil
	}

	slog.Info(LogMsgLoadingLibrary, "path", cfg.PackPath, "strict", cfg.StrictImport)
	factory := item.NewFactory(item.Services{Localizer: bundle.Localizer(cfg.DefaultLocale)}, nil)
	loader := library.NewLoader(factory, schemas)

	if err := library.LoadStore(ctx, loader, store, cfg.PackPath, library.BuildOptions{Strict: cfg.StrictImport}); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadPack, err)
	}
	return store, nil
}
