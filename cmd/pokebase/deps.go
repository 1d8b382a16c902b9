package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Leo-Expose/PokeBase/internal/blob"
	"github.com/Leo-Expose/PokeBase/internal/orchestrators/pokedex"
	dexrepo "github.com/Leo-Expose/PokeBase/internal/repositories/dex"
)

// shared flag values for commands that need the dataset
var (
	dbPath   string
	dbDriver string
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func buildRepository() (dexrepo.Repository, error) {
	switch dbDriver {
	case "sqlite":
		repo, err := dexrepo.NewSQLite(dbPath)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case "postgres":
		repo, err := dexrepo.NewPostgres(dbPath)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown db driver %q", dbDriver)
	}
}

func buildService(repo dexrepo.Repository) (pokedex.Service, error) {
	return pokedex.NewOrchestrator(&pokedex.Config{Repo: repo})
}

func buildSpriteSource(ctx context.Context) (blob.Source, error) {
	switch spritesDriver {
	case "fs":
		src, err := blob.NewFilesystem(spritesDir)
		if err != nil {
			return nil, err
		}
		return src, nil
	case "s3":
		src, err := blob.NewS3(ctx, blob.S3Config{
			Region:    spritesS3Region,
			Bucket:    spritesS3Bucket,
			Prefix:    spritesS3Prefix,
			Endpoint:  spritesS3Endpoint,
			PathStyle: spritesS3PathStyle,
		})
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unknown sprites driver %q", spritesDriver)
	}
}
