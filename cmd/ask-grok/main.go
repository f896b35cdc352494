// Command ask-grok sends a prompt to the xAI chat-completions API and
// prints the answer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/wlsidlsi/ask-grok/pkg/cli"
	"github.com/wlsidlsi/ask-grok/pkg/grok"
	"github.com/wlsidlsi/ask-grok/pkg/logger"
	"github.com/wlsidlsi/ask-grok/pkg/render"
)

func main() {
	params, err := cli.Parse(cli.Options{
		Args:   os.Args[1:],
		Stdin:  os.Stdin,
		Piped:  cli.StdinPiped(),
		Stderr: os.Stderr,
	})
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(os.Stderr, params.Verbose)
	log.Debugf("parameters: model=%s effort=%q attach=%q render=%v list_models=%v prompt_bytes=%d",
		params.Model, params.Effort, params.AttachedFile, params.UseRenderer, params.ListModels, len(params.Prompt))

	client := grok.NewClient(grok.Options{
		APIKey:  params.APIKey,
		BaseURL: params.BaseURL,
		Logger:  log,
		Verbose: params.Verbose,
	})
	ctx := context.Background()

	if params.ListModels {
		client.PrintModels(ctx, os.Stdout)
		return
	}

	answer, err := client.Complete(ctx, grok.Request{
		Model:        params.Model,
		Prompt:       params.Prompt,
		AttachedFile: params.AttachedFile,
		Effort:       params.Effort,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := render.Output(os.Stdout, answer, params.UseRenderer); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
