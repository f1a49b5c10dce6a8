package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-light-wallet/internal/client"
	"github.com/MKhiriev/go-light-wallet/internal/config"
	"github.com/MKhiriev/go-light-wallet/internal/crypto"
	"github.com/MKhiriev/go-light-wallet/internal/engine"
	"github.com/MKhiriev/go-light-wallet/internal/logger"
	"github.com/MKhiriev/go-light-wallet/internal/utils"
	"github.com/MKhiriev/go-light-wallet/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const controlOperator = "operator"

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-light-wallet").Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.IssueToken {
		token, err := utils.GenerateJWTToken(cfg.App.TokenIssuer, controlOperator, cfg.App.TokenDuration, cfg.App.TokenSignKey)
		if err != nil {
			logger.NewLogger("go-light-wallet").Fatal().Err(err).Msg("error issuing control token")
		}
		fmt.Println(token.String())
		return
	}

	var log *logger.Logger
	if cfg.Headless {
		log = logger.NewLogger("go-light-wallet")
	} else {
		log = logger.NewClientLogger("go-light-wallet", cfg.Storage.LogFile)
	}

	factory := engine.NewFactory(crypto.NewKeyChainService(), log)

	app, err := client.NewApp(factory, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
