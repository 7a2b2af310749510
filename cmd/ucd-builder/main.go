package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/RemiKalbe/unicode-explorer/consts"
	"github.com/RemiKalbe/unicode-explorer/logger"
	"github.com/RemiKalbe/unicode-explorer/ucd"
)

var (
	url = kingpin.Flag("url", "UCD flat XML snapshot URL").
		Default(consts.DefaultUCDURL).String()
	cacheDir = kingpin.Flag("cache-dir", "download cache directory").
			Default(consts.DefaultCacheDir).String()
	out = kingpin.Flag("out", "output directory for per-block name files").
		Default(consts.DefaultDataDir).String()
	debug = kingpin.Flag("debug", "enable debug logging").Bool()
)

func main() {
	kingpin.Parse()
	if *debug {
		logger.SetLevel(zapcore.DebugLevel)
	}
	defer logger.Sync()

	builder := &ucd.Builder{
		URL:      *url,
		CacheDir: *cacheDir,
		OutDir:   *out,
	}
	if err := builder.Run(); err != nil {
		logger.Fatal("name build failed", zap.Error(err))
	}
}
