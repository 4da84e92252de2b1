// catalog-sync refreshes the local snapshot files for the external game
// catalogs. The API server reads these snapshots as a fallback when a
// live fetch fails, so the tool is meant to run periodically (cron).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/time/rate"

	"gamerank/internal/catalog"
	"gamerank/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := context.Background()

	if err := os.MkdirAll(cfg.DataPath, 0o755); err != nil {
		log.Fatalf("could not create data directory: %v", err)
	}

	sources := []catalog.Source{
		{Name: "freetogame", URL: cfg.FreeToGameAPIURL, SnapshotPath: cfg.FreeToGameSnapshotPath()},
		{Name: "mmobomb", URL: cfg.MMOBombAPIURL, SnapshotPath: cfg.MMOBombSnapshotPath()},
	}

	client := &http.Client{Timeout: cfg.CatalogTimeout}
	// one request per second keeps us well under the public API limits
	limiter := rate.NewLimiter(rate.Limit(1), 1)

	failures := 0
	for _, src := range sources {
		if err := limiter.Wait(ctx); err != nil {
			log.Fatalf("rate limiter interrupted: %v", err)
		}

		n, err := syncSource(ctx, client, src)
		if err != nil {
			logger.Error("snapshot sync failed", "source", src.Name, "error", err)
			failures++
			continue
		}
		logger.Info("snapshot refreshed", "source", src.Name, "games", n, "path", src.SnapshotPath)
	}

	if failures == len(sources) {
		os.Exit(1)
	}
}

// syncSource downloads one catalog and atomically replaces its snapshot
// file. The payload is validated as a JSON game array before the old
// snapshot is touched, so a bad response never clobbers a good backup.
func syncSource(ctx context.Context, client *http.Client, src catalog.Source) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var games []catalog.Game
	if err := json.Unmarshal(body, &games); err != nil {
		return 0, fmt.Errorf("response is not a game list: %w", err)
	}

	tmp := src.SnapshotPath + ".tmp"
	if err := os.WriteFile(tmp, body, 0o644); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp, filepath.Clean(src.SnapshotPath)); err != nil {
		os.Remove(tmp)
		return 0, err
	}

	return len(games), nil
}
