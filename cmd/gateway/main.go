package main

import (
	"staffhub/apps/gateway"
	"staffhub/cmd/gateway/router"
	"staffhub/internal"
	"staffhub/pkg"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		gateway.Module,
		router.Module,
		pkg.Module,
		internal.Module,
	).Run()
}
