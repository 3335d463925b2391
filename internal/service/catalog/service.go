package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/meeplelab/ludoteca-service/internal/model"
	"github.com/meeplelab/ludoteca-service/pkg/circuitbreaker"
)

type Config struct {
	BaseURL string `envconfig:"CATALOG_API_URL" default:"https://api.geekdo.com/v1"`
}

type Repository interface {
	GetOrCreateGame(ctx context.Context, game model.CatalogGame) (model.CatalogGame, error)
}

// Service talks to the external board-game catalog. The breaker keeps a
// flaky upstream from stalling every request once it starts failing.
type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    Config
	cb     circuitbreaker.CircuitBreaker
	repo   Repository
}

func NewService(repo Repository, cfg Config, log *zap.Logger) *Service {
	return &Service{
		log:    log.Named("catalog"),
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg,
		cb:     circuitbreaker.New(20, 30*time.Second, 0.5, 5),
		repo:   repo,
	}
}

type gameDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Year        string `json:"year"`
	MinPlayers  string `json:"minPlayers"`
	MaxPlayers  string `json:"maxPlayers"`
	MinPlaytime string `json:"minPlaytime"`
	MaxPlaytime string `json:"maxPlaytime"`
	MinAge      string `json:"minAge"`
}

func (d gameDTO) toModel() model.CatalogGame {
	return model.CatalogGame{
		ExternalID:  d.ID,
		Name:        d.Name,
		Image:       d.Image,
		Year:        d.Year,
		MinPlayers:  d.MinPlayers,
		MaxPlayers:  d.MaxPlayers,
		MinPlaytime: d.MinPlaytime,
		MaxPlaytime: d.MaxPlaytime,
		MinAge:      d.MinAge,
	}
}

// Search queries the upstream catalog; results are not persisted.
func (s *Service) Search(ctx context.Context, query string) ([]model.CatalogGame, error) {
	u := fmt.Sprintf("%s/search?query=%s", s.cfg.BaseURL, url.QueryEscape(query))

	var dtos []gameDTO
	err := s.cb.Call(func() error {
		return s.getJSON(ctx, u, &dtos)
	})
	if err != nil {
		return nil, err
	}

	games := make([]model.CatalogGame, 0, len(dtos))
	for _, d := range dtos {
		games = append(games, d.toModel())
	}
	return games, nil
}

// GetOrCreate fetches one game by its external id and upserts it into the
// local games table, returning the local row.
func (s *Service) GetOrCreate(ctx context.Context, externalID string) (model.CatalogGame, error) {
	u := fmt.Sprintf("%s/games/%s", s.cfg.BaseURL, url.PathEscape(externalID))

	var dto gameDTO
	err := s.cb.Call(func() error {
		return s.getJSON(ctx, u, &dto)
	})
	if err != nil {
		return model.CatalogGame{}, err
	}

	return s.repo.GetOrCreateGame(ctx, dto.toModel())
}

func (s *Service) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("catalog api status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
