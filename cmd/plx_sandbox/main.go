package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/polyaxon/plx/pkg/auth"
	"github.com/polyaxon/plx/pkg/configs/sandbox"
	kdb "github.com/polyaxon/plx/pkg/db"
	"github.com/polyaxon/plx/pkg/db/memory"
	kpg "github.com/polyaxon/plx/pkg/db/postgres"
	"github.com/polyaxon/plx/pkg/utils/filewatch"
)

func main() {
	os.Exit(run())
}

// run serves until a signal comes or the config is modified, and returns the exit code.
func run() int {
	pconfig := flag.String(
		"config", os.Getenv(sandbox.EnvConfig), "path to config file. empty means defaults.",
	)
	loglevel := flag.String("loglevel", "", "log level. debug|info|warn|error|off. overrides config.")
	issueToken := flag.String("issue-token", "", "print a token for the user and exit")
	flag.Parse()

	conf, err := loadConfig(*pconfig)
	if err != nil {
		log.Fatalf("can not read configuration: %s", err)
	}

	if *issueToken != "" {
		org := ""
		if u, ok := conf.User(*issueToken); ok {
			org = u.User().Organization
		}
		tok, err := auth.Issue(conf.JWTSecret(), *issueToken, org, conf.TokenTTL(), time.Now())
		if err != nil {
			log.Fatalf("can not issue token: %s", err)
		}
		fmt.Println(tok)
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	docs, err := connect(ctx, conf)
	if err != nil {
		log.Fatalf("can not open store: %s", err)
	}

	lvl := conf.LogLevel()
	if *loglevel != "" {
		lvl = *loglevel
	}
	server := BuildServer(conf, docs, lvl)
	for _, r := range server.Routes() {
		server.Logger.Debugf("- mount handler: %s %s", strings.ToUpper(r.Method), r.Path)
	}

	if *pconfig != "" {
		wctx, wcancel, err := filewatch.UntilModified(ctx, *pconfig)
		if err != nil {
			log.Fatalf("can not watch configuration: %s", err)
		}
		defer wcancel()
		ctx = wctx
	}

	return Serve(ctx, server, fmt.Sprintf(":%d", conf.Port()), docs)
}

func loadConfig(path string) (*sandbox.SandboxConfig, error) {
	if path == "" {
		return sandbox.Unmarshal(nil)
	}
	return sandbox.LoadSandboxConfig(path)
}

func connect(ctx context.Context, conf *sandbox.SandboxConfig) (kdb.DocumentInterface, error) {
	switch conf.Store() {
	case sandbox.PostgresStore:
		return kpg.New(ctx, conf.DBURI())
	default:
		return memory.New(), nil
	}
}
