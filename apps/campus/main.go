package main

import (
	"log"
	"os"

	"github.com/motembo/campus/core"
	logsvc "github.com/motembo/campus/services/logger"
)

func main() {
	std := log.New(os.Stderr, "CAMPUS : ", log.LstdFlags)

	debug := core.Conf.GetBool("debug")
	var logger core.Logger
	if token := core.Conf.GetString("rollbarToken"); token != "" {
		rb := logsvc.NewRollbarLogger(std, token, core.Conf.GetString("env"), core.Conf.GetString("build"))
		rb.Enable(!debug) // no remote reporting from dev runs
		logger = rb
	} else {
		logger = logsvc.NewConsoleLogger(std, debug)
	}

	if err := newRootCommand(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
