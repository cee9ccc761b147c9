// simplechat - a terminal chat client for OpenAI-compatible APIs.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	"github.com/jeranaias/simplechat/internal/cli"
	"github.com/jeranaias/simplechat/internal/cloud"
	"github.com/jeranaias/simplechat/internal/config"
	"github.com/jeranaias/simplechat/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simplechat: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		return err
	}
	if args.ShowHelp {
		cli.PrintUsage()
		return nil
	}
	if args.ShowVersion {
		cli.PrintVersion()
		return nil
	}

	var cfg *config.Config
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// A missing credential is fatal before any session begins.
	apiKey, err := cfg.ResolveAPIKey(args.KeyFile)
	if err != nil {
		return err
	}

	client := cloud.New(apiKey, cfg.Model)
	st := store.New(cfg.ChatDir, cfg.PromptDir)
	session := cli.NewSession(cfg, client, st, args.Quiet)

	if args.ChatName != "" {
		if err := session.LoadChat(args.ChatName); err != nil {
			return err
		}
	}
	if args.PromptName != "" {
		if err := session.ApplyPrompt(args.PromptName); err != nil {
			return err
		}
	}

	return session.Run()
}
