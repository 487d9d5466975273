package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/osse101/NumeneraItems_Go/internal/sse"
)

type WatchCommand struct {
	out io.Writer
}

func (c *WatchCommand) Name() string {
	return "watch"
}

func (c *WatchCommand) Description() string {
	return "Print item events streamed by a running service"
}

func (c *WatchCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	baseURL := fs.String("url", getenvDefault(envAPIURL, defaultAPIURL), "service base URL")
	types := fs.String("types", "", "comma separated event types")
	limit := fs.Int("n", 0, "exit after n item events (0 streams until interrupted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return c.stream(ctx, *baseURL, *types, os.Getenv(envAPIKey), *limit)
}

func (c *WatchCommand) stream(ctx context.Context, baseURL, types, apiKey string, limit int) error {
	endpoint := baseURL + "/api/v1/events"
	if types != "" {
		endpoint += "?types=" + url.QueryEscape(types)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	if apiKey != "" {
		req.Header.Set(headerAPIKey, apiKey)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	PrintInfo("Connected to %s", endpoint)

	seen := 0
	var eventType string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			eventType = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			if eventType == sse.EventTypeConnected || eventType == sse.EventTypeKeepalive {
				continue
			}
			fmt.Fprintf(c.out, "%s %s\n", eventType, strings.TrimPrefix(line, "data: "))
			seen++
			if limit > 0 && seen >= limit {
				return nil
			}
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
