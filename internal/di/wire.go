//go:build wireinject
// +build wireinject

package di

import (
	"notifeed/internal/notif"

	"github.com/google/wire"
)

func InitializeApplication() (*Application, error) {
	wire.Build(
		ProvideConfig,
		ProvideStore,
		notif.NewPreferenceStore,
		ProvidePipeline,
		notif.NewService,
		ProvideSweeper,
		ProvideSimulator,
		ProvideRouter,
		ProvideDispatcher,
		notif.NewHTTPHandler,
		NewApplication,
	)
	return &Application{}, nil
}
