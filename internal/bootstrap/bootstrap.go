package bootstrap

import (
	"io/fs"
	"log/slog"

	"github.com/GregMSThompson/ifsc-finder/internal/config"
	"github.com/GregMSThompson/ifsc-finder/pkg/logger"
	"github.com/GregMSThompson/ifsc-finder/web"
)

type Bootstrap struct {
	Log    *slog.Logger
	Assets fs.FS
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	slog.SetDefault(bs.Log)

	bs.Assets, err = web.Assets()
	if err != nil {
		return bs, err
	}

	return bs, nil
}
