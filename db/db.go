package db

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"sudoku_core_go/internal/types"
)

var log = logrus.New()

const collection = "sudokus"

// maxIDLen is enforced by the PocketBase collection schema.
const maxIDLen = 6

// Store uploads generated puzzles to a PocketBase instance and reads
// them back. Credentials come from the environment (optionally a .env
// file): POCKETBASE_URL, POCKETBASE_EMAIL, POCKETBASE_PASSWORD.
type Store struct {
	client *pocketbase.Client
}

// NewStore builds a Store from the environment and authenticates.
// Authentication is retried with exponential backoff, then refreshed
// every 30 minutes in the background.
func NewStore() (*Store, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, relying on process environment")
	}

	url := os.Getenv("POCKETBASE_URL")
	if url == "" {
		return nil, fmt.Errorf("POCKETBASE_URL is not set")
	}

	s := &Store{
		client: pocketbase.NewClient(url,
			pocketbase.WithSuperuserEmailPassword(
				os.Getenv("POCKETBASE_EMAIL"),
				os.Getenv("POCKETBASE_PASSWORD"),
			)),
	}

	authorize := func() error { return s.client.Authorize() }
	if err := backoff.Retry(authorize, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4)); err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		for range ticker.C {
			if err := s.client.Authorize(); err != nil {
				log.Warnf("re-authentication failed: %v", err)
			}
		}
	}()

	return s, nil
}

// Upload stores a puzzle. The record ID is the puzzle ID and must fit
// the collection's 6-character limit. Transient failures are retried
// with exponential backoff.
func (s *Store) Upload(p *types.Puzzle) error {
	if p.ID == "" || len(p.ID) > maxIDLen {
		return fmt.Errorf("invalid ID %q: must be 1-%d characters", p.ID, maxIDLen)
	}

	exists, err := s.Exists(p.ID)
	if err != nil {
		return fmt.Errorf("failed to check if sudoku exists: %w", err)
	}
	if exists {
		return fmt.Errorf("sudoku with ID %s already exists", p.ID)
	}

	sudokuJSON, err := json.Marshal(map[string]any{
		"grid":     p.Grid,
		"solution": p.Solution,
		"givens":   p.Givens,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal sudoku data: %w", err)
	}

	data := map[string]any{
		"id":         p.ID,
		"sudoku":     string(sudokuJSON),
		"difficulty": string(p.Difficulty),
	}

	create := func() error {
		_, err := s.client.Create(collection, data)
		return err
	}
	if err := backoff.Retry(create, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)); err != nil {
		return fmt.Errorf("failed to upload sudoku: %w", err)
	}

	log.Infof("uploaded sudoku %s (%s)", p.ID, p.Difficulty)
	return nil
}

// Get loads one puzzle by record ID.
func (s *Store) Get(id string) (*types.Puzzle, error) {
	rec, err := s.client.One(collection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load sudoku %s: %w", id, err)
	}

	raw, ok := rec["sudoku"].(string)
	if !ok {
		return nil, fmt.Errorf("sudoku %s has no payload", id)
	}

	var payload struct {
		Grid     types.Grid       `json:"grid"`
		Solution types.Grid       `json:"solution"`
		Givens   []types.Position `json:"givens"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sudoku data: %w", err)
	}

	diff, _ := rec["difficulty"].(string)
	return &types.Puzzle{
		ID:         id,
		Grid:       payload.Grid,
		Solution:   payload.Solution,
		Givens:     payload.Givens,
		Difficulty: types.Difficulty(diff),
	}, nil
}

// List pages through stored puzzles, optionally filtered by difficulty.
func (s *Store) List(page, perPage int, difficulty types.Difficulty) (*pocketbase.ResponseList[map[string]any], error) {
	var filterRules []string
	if difficulty != "" {
		filterRules = append(filterRules, fmt.Sprintf("difficulty = %q", string(difficulty)))
	}

	params := pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    "-created",
		Filters: strings.Join(filterRules, " && "),
	}

	result, err := s.client.List(collection, params)
	return &result, err
}

// Exists reports whether a record with the given ID is stored.
func (s *Store) Exists(id string) (bool, error) {
	_, err := s.client.One(collection, id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
