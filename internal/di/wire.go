//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/sandeepkv93/go-service-template/internal/app"
)

func InitializeApp() (*app.App, error) {
	panic(wire.Build(
		ConfigSet,
		ObservabilitySet,
		InfraSet,
		DomainSet,
		HTTPSet,
		AppSet,
	))
}
