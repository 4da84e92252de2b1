// Package catalog aggregates the two external free-to-play game APIs
// (FreeToGame and MMOBomb) into one unified listing. It is best-effort
// glue: a failing source contributes its local snapshot, or nothing.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"gamerank/internal/config"
)

// Game is the simplified representation unified across providers. Both
// APIs return a JSON array with at least title and platform fields.
type Game struct {
	Title            string `json:"title"`
	Platform         string `json:"platform"`
	Genre            string `json:"genre,omitempty"`
	Developer        string `json:"developer,omitempty"`
	Publisher        string `json:"publisher,omitempty"`
	ReleaseDate      string `json:"release_date,omitempty"`
	Thumbnail        string `json:"thumbnail,omitempty"`
	GameURL          string `json:"game_url,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
	Source           string `json:"source,omitempty"`
}

// Source is one external catalog endpoint with its snapshot fallback.
type Source struct {
	Name         string
	URL          string
	SnapshotPath string
}

type Client struct {
	httpClient *http.Client
	sources    []Source
	logger     *slog.Logger
}

func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.CatalogTimeout},
		sources: []Source{
			{Name: "freetogame", URL: cfg.FreeToGameAPIURL, SnapshotPath: cfg.FreeToGameSnapshotPath()},
			{Name: "mmobomb", URL: cfg.MMOBombAPIURL, SnapshotPath: cfg.MMOBombSnapshotPath()},
		},
		logger: logger,
	}
}

// NewClientWithSources is used by tests and by the sync tool to point at
// specific endpoints.
func NewClientWithSources(httpClient *http.Client, sources []Source, logger *slog.Logger) *Client {
	return &Client{httpClient: httpClient, sources: sources, logger: logger}
}

// FetchUnified queries both sources in order and returns the merged
// listing filtered by platform. Failures never propagate: a source that
// cannot be fetched or parsed falls back to its snapshot file and then
// to an empty contribution.
func (c *Client) FetchUnified(ctx context.Context, platform string) []Game {
	var lists [][]Game
	for _, src := range c.sources {
		lists = append(lists, c.fetchSource(ctx, src))
	}
	merged := mergeByTitle(lists...)
	return filterByPlatform(merged, platform)
}

func (c *Client) fetchSource(ctx context.Context, src Source) []Game {
	games, err := c.fetchLive(ctx, src)
	if err == nil {
		return games
	}
	c.logger.Warn("catalog fetch failed, trying snapshot",
		"source", src.Name,
		"error", err,
	)

	games, err = readSnapshot(src)
	if err != nil {
		c.logger.Warn("catalog snapshot unavailable",
			"source", src.Name,
			"error", err,
		)
		return nil
	}
	return games
}

func (c *Client) fetchLive(ctx context.Context, src Source) ([]Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return decodeGames(body, src.Name)
}

func readSnapshot(src Source) ([]Game, error) {
	data, err := os.ReadFile(src.SnapshotPath)
	if err != nil {
		return nil, err
	}
	return decodeGames(data, src.Name)
}

func decodeGames(data []byte, source string) ([]Game, error) {
	var games []Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, err
	}
	for i := range games {
		games[i].Source = source
	}
	return games, nil
}

// mergeByTitle combines the source lists, deduplicating by
// case-insensitive trimmed title. The first occurrence wins, so the
// earlier source's record (and its casing) is kept on duplicates.
func mergeByTitle(lists ...[]Game) []Game {
	seen := make(map[string]struct{})
	var merged []Game
	for _, list := range lists {
		for _, g := range list {
			key := strings.ToLower(strings.TrimSpace(g.Title))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, g)
		}
	}
	return merged
}

// filterByPlatform keeps games whose platform field contains the filter
// as a case-insensitive substring. An empty filter keeps everything.
func filterByPlatform(games []Game, platform string) []Game {
	needle := strings.ToLower(strings.TrimSpace(platform))
	if needle == "" {
		return games
	}
	var filtered []Game
	for _, g := range games {
		if strings.Contains(strings.ToLower(g.Platform), needle) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}
