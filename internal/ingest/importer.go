// Package ingest загружает прогнозы игроков, аукционные цены и команды лиги.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/bagdasarian/auction-draft/internal/repository"
	"github.com/bagdasarian/auction-draft/internal/scoring"
	"github.com/bagdasarian/auction-draft/internal/service"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Importer struct {
	fetcher     Fetcher
	players     repository.PlayerRepository
	teamService service.TeamService
	rules       scoring.Rules
	baseURL     string
	workers     int
	log         logrus.FieldLogger
}

func NewImporter(
	fetcher Fetcher,
	players repository.PlayerRepository,
	teamService service.TeamService,
	rules scoring.Rules,
	baseURL string,
	workers int,
	log logrus.FieldLogger,
) *Importer {
	if workers < 1 {
		workers = 1
	}
	return &Importer{
		fetcher:     fetcher,
		players:     players,
		teamService: teamService,
		rules:       rules,
		baseURL:     baseURL,
		workers:     workers,
		log:         log,
	}
}

// ImportProjections загружает страницы всех позиций, считает очки и сохраняет игроков.
// Возвращает количество сохраненных игроков.
func (i *Importer) ImportProjections(ctx context.Context) (int, error) {
	pages := make([][]*domain.Player, len(domain.Positions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.workers)
	for idx, position := range domain.Positions {
		g.Go(func() error {
			players, err := i.fetchPosition(gctx, position)
			if err != nil {
				return err
			}
			pages[idx] = players
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var saved atomic.Int64
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(i.workers)
	for _, players := range pages {
		for _, player := range players {
			g.Go(func() error {
				i.rules.Apply(player)
				if err := i.players.Upsert(gctx, player); err != nil {
					return fmt.Errorf("upsert player %s (%s): %w", player.Name, player.Team, err)
				}
				saved.Add(1)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	i.log.WithField("players", saved.Load()).Info("projections imported")
	return int(saved.Load()), nil
}

func (i *Importer) fetchPosition(ctx context.Context, position domain.Position) ([]*domain.Player, error) {
	url, err := ProjectionURL(i.baseURL, position)
	if err != nil {
		return nil, err
	}

	html, err := i.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	players, err := ParseProjections(position, strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	i.log.WithFields(logrus.Fields{
		"position": position,
		"players":  len(players),
	}).Debug("projection page parsed")
	return players, nil
}

// ApplyValues проставляет аукционные цены из шпаргалки.
// Строка с неизвестным игроком прерывает загрузку.
func (i *Importer) ApplyValues(ctx context.Context, entries []ValueEntry) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.workers)
	for _, entry := range entries {
		g.Go(func() error {
			err := i.players.SetValue(gctx, entry.Name, entry.Team, entry.Price)
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("player not found %s - %s", entry.Name, entry.Team)
			}
			if err != nil {
				return fmt.Errorf("set value for %s - %s: %w", entry.Name, entry.Team, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	i.log.WithField("values", len(entries)).Info("auction values applied")
	return nil
}

// CreateTeams создает команды лиги. Команды с уже существующим именем пропускаются,
// поэтому повторный запуск не дублирует лигу.
func (i *Importer) CreateTeams(ctx context.Context, entries []TeamEntry) (int, error) {
	existing, err := i.teamService.ListTeams(ctx)
	if err != nil {
		return 0, fmt.Errorf("list teams: %w", err)
	}

	names := make(map[string]struct{}, len(existing))
	for _, team := range existing {
		names[team.Name] = struct{}{}
	}

	created := 0
	for _, entry := range entries {
		if _, ok := names[entry.Name]; ok {
			i.log.WithField("team", entry.Name).Debug("team already exists")
			continue
		}
		if _, err := i.teamService.CreateTeam(ctx, entry.Name, entry.Owner); err != nil {
			return created, fmt.Errorf("create team %q: %w", entry.Name, err)
		}
		names[entry.Name] = struct{}{}
		created++
	}

	i.log.WithField("teams", created).Info("teams created")
	return created, nil
}
