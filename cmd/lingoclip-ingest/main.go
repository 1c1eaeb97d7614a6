package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/lingoclip/lingoclip/internal/config"
	"github.com/lingoclip/lingoclip/internal/domain"
	"github.com/lingoclip/lingoclip/internal/infra/elastic"
	"github.com/lingoclip/lingoclip/internal/infra/repository"
	"github.com/lingoclip/lingoclip/internal/srt"
)

// Indexes subtitle files so the search service can serve clips from them.
// Each cue becomes one document keyed by its composite id, so running
// the same file twice upserts instead of duplicating.
func main() {
	godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: lingoclip-ingest [-config path] file.srt ...")
		os.Exit(2)
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	backend, err := elastic.New(conf.Server.ElasticAddrs, conf.Server.ElasticUser, conf.Server.ElasticPassword)
	if err != nil {
		panic("failed to connect search backend")
	}
	repo := repository.NewSubtitleRepository(backend)

	ctx := context.Background()
	for _, path := range files {
		count, err := ingestFile(ctx, repo, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("%s: indexed %d cues\n", path, count)
	}
}

func ingestFile(ctx context.Context, repo *repository.SubtitleRepository, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	cues, err := srt.Parse(file)
	if err != nil {
		return 0, err
	}

	name := filepath.Base(path)
	for _, cue := range cues {
		sub := &domain.Subtitle{
			Index:    cue.Index,
			Start:    cue.Start,
			End:      cue.End,
			Content:  cue.Text,
			SubStart: cue.Start,
			SubEnd:   cue.End,
			SrtFile:  name,
			TsReady:  false,
		}
		if err := repo.Save(ctx, sub); err != nil {
			return 0, err
		}
	}
	return len(cues), nil
}
