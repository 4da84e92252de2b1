// import-games loads the course game feed (an XML listing) into the
// catalog table. Identifiers are prefixed with "LIS1-" so feed rows can
// never collide with games created through other channels, and existing
// rows are left untouched on re-import.
package main

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"gamerank/database"
	"gamerank/internal/config"
	"gamerank/internal/models"
	"gamerank/internal/repository"
)

type feedGame struct {
	ID               string `xml:"id"`
	Title            string `xml:"title"`
	Platform         string `xml:"platform"`
	Genre            string `xml:"genre"`
	Developer        string `xml:"developer"`
	Publisher        string `xml:"publisher"`
	ShortDescription string `xml:"short_description"`
	Thumbnail        string `xml:"thumbnail"`
	GameURL          string `xml:"game_url"`
	ReleaseDate      string `xml:"release_date"`
}

type feed struct {
	Games []feedGame `xml:"game"`
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := context.Background()

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	gameRepo := repository.NewGameRepository(db)

	logger.Info("downloading game feed", "url", cfg.GamesFeedURL)
	games, err := downloadFeed(ctx, cfg.GamesFeedURL)
	if err != nil {
		log.Fatalf("could not read game feed: %v", err)
	}

	created, skipped := 0, 0
	for i, fg := range games {
		game, err := toModel(fg, i)
		if err != nil {
			logger.Warn("skipping feed entry", "index", i, "error", err)
			continue
		}

		wasCreated, err := gameRepo.CreateIfAbsent(ctx, game)
		if err != nil {
			log.Fatalf("could not import %s: %v", game.GameID, err)
		}
		if wasCreated {
			created++
			logger.Info("imported game", "id", game.GameID, "title", game.Title)
		} else {
			skipped++
		}
	}

	logger.Info("import finished", "total", len(games), "created", created, "already_present", skipped)
}

func downloadFeed(ctx context.Context, url string) ([]feedGame, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
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

	var f feed
	if err := xml.Unmarshal(body, &f); err != nil {
		return nil, err
	}
	return f.Games, nil
}

func toModel(fg feedGame, index int) (*models.Game, error) {
	id := strings.TrimSpace(fg.ID)
	if id == "" {
		// the feed occasionally omits ids; fall back to the position
		id = fmt.Sprintf("%d", index)
	}

	game := &models.Game{
		GameID:           "LIS1-" + id,
		Title:            strings.TrimSpace(fg.Title),
		Platform:         strings.TrimSpace(fg.Platform),
		Genre:            strings.TrimSpace(fg.Genre),
		Developer:        strings.TrimSpace(fg.Developer),
		Publisher:        strings.TrimSpace(fg.Publisher),
		ShortDescription: strings.TrimSpace(fg.ShortDescription),
		Thumbnail:        strings.TrimSpace(fg.Thumbnail),
		GameURL:          strings.TrimSpace(fg.GameURL),
	}
	if game.Title == "" {
		return nil, fmt.Errorf("feed entry has no title")
	}

	if dateStr := strings.TrimSpace(fg.ReleaseDate); dateStr != "" {
		parsed, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			// a bad date should not block the rest of the record
			slog.Warn("invalid release date in feed", "id", game.GameID, "value", dateStr)
		} else {
			game.ReleaseDate = &parsed
		}
	}

	return game, nil
}
