package main

import (
	"flag"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"negachess/internal/config"
	"negachess/internal/engine"
	"negachess/internal/server/game"
	httpserver "negachess/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，没有图形界面时失败也无所谓
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	addr := flag.String("addr", cfg.HTTP.Addr, "listen address")
	depth := flag.Int("depth", cfg.Engine.Depth, "default search depth for new games")
	browser := flag.Bool("browser", false, "open the health endpoint in a browser once listening")
	flag.Parse()

	if err := cfg.Logs.Setup(); err != nil {
		log.Fatal().Err(err).Msg("logging")
	}
	cfg.Engine.Depth = *depth

	defaults := cfg.Engine.SearchConfig()
	if err := defaults.Validate(); err != nil {
		log.Fatal().Err(err).Msg("engine config")
	}

	// 每局一个引擎：开局库 / 残局库的路径来自配置，开关来自请求
	manager := game.NewManager(func(sc engine.SearchConfig) (*engine.Engine, error) {
		ec := cfg.Engine
		ec.Depth = sc.Depth
		ec.OpeningBook = sc.OpeningBook
		ec.EndgameTable = sc.EndgameTable
		return ec.NewEngine()
	})

	if !strings.EqualFold(cfg.Logs.Level, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpserver.NewRouter(httpserver.NewHandler(manager, defaults))

	log.Info().Str("addr", *addr).Int("depth", defaults.Depth).Msg("listening")

	if *browser {
		go func() {
			time.Sleep(100 * time.Millisecond)
			host := *addr
			if strings.HasPrefix(host, ":") {
				host = "127.0.0.1" + host
			}
			openBrowser("http://" + host + "/health")
		}()
	}

	if err := router.Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("serve")
	}
}
