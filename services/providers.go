package services

import (
	"github.com/l3montree-dev/cryptoguard/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(NewVexSource),
	fx.Provide(fx.Annotate(NewInventoryService, fx.As(new(shared.InventoryService)))),
	fx.Provide(fx.Annotate(NewVexService, fx.As(new(shared.VexService)))),
)
