package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/common/config"
	coursemodel "github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/model"
	"github.com/tpo-jperez9/Project-9-Rest-API/pkg/web/router"
)

func main() {
	// config: defaults < file < env
	cfg := config.Load()

	db, err := cfg.InitDB()
	if err != nil {
		hlog.Fatalf("Failed to initialize database: %v", err)
	}

	// users before courses, courses reference users
	if err := coursemodel.AutoMigrate(db); err != nil {
		hlog.Fatalf("Failed to migrate schema: %v", err)
	}

	h := server.Default(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)

	router.RegisterAPIs(h, cfg, db)

	hlog.Infof("course api listening on %s (env=%s)", cfg.Server.Address, cfg.Env)
	h.Spin()
}
