package cmd

import (
	"fmt"
	"time"

	"newpunch-journalist/internal/config"
	"newpunch-journalist/internal/facepunch"
	"newpunch-journalist/internal/headlines"
	"newpunch-journalist/internal/model"
	"newpunch-journalist/internal/storage"
	"newpunch-journalist/internal/voice"
	"newpunch-journalist/worker"

	"github.com/redis/go-redis/v9"
)

func newStore(cfg config.Config, rdb *redis.Client) *storage.RedisStore {
	return storage.NewRedisStore(rdb, cfg.Storage.KeyPrefix, cfg.Storage.BatchSize)
}

// newRefresher wires the fetch/extract/store pipeline for both categories.
func newRefresher(cfg config.Config, store *storage.RedisStore) (*worker.Refresher, error) {
	fetchTimeout, err := time.ParseDuration(cfg.Facepunch.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid facepunch.timeout: %w", err)
	}
	runTimeout, err := time.ParseDuration(cfg.Refresh.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh.timeout: %w", err)
	}
	client := facepunch.NewClient(cfg.Facepunch.Host, fetchTimeout, cfg.Facepunch.UserAgent)
	extractor, err := facepunch.NewExtractor(cfg.Facepunch.Host)
	if err != nil {
		return nil, err
	}
	targets := make([]worker.Target, 0, len(model.Categories))
	for _, cat := range model.Categories {
		cc := cfg.Category(cat)
		targets = append(targets, worker.Target{
			Category:    cat,
			URLTemplate: client.ListingURL(cc.ListingPath),
			Table:       cc.Table,
		})
	}
	return &worker.Refresher{
		Fetcher:      client,
		Extractor:    extractor,
		Store:        store,
		Targets:      targets,
		Pages:        cfg.Facepunch.MaxPages,
		Schedule:     cfg.Refresh.Schedule,
		RunAtStartup: cfg.Refresh.RunAtStartup,
		Timeout:      runTimeout,
	}, nil
}

func newQueryService(cfg config.Config, store *storage.RedisStore) *headlines.Service {
	return headlines.NewService(store, cfg.Tables())
}

// newVoiceAdapter calls the query service in-process unless voice.query_url
// names a remote endpoint.
func newVoiceAdapter(cfg config.Config, svc *headlines.Service) (*voice.Adapter, error) {
	if cfg.Voice.QueryURL == "" {
		return voice.NewAdapter(svc), nil
	}
	timeout, err := time.ParseDuration(cfg.Voice.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid voice.timeout: %w", err)
	}
	return voice.NewAdapter(voice.NewHTTPInvoker(cfg.Voice.QueryURL, timeout)), nil
}
