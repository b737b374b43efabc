package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// CompoundScenariosKey is the storage key of the compound calculator's list.
const CompoundScenariosKey = "calc_scenarios_jc_v1"

var (
	ErrEmptyName       = errors.New("scenario name is required")
	ErrIndexOutOfRange = errors.New("scenario index out of range")
	ErrNotFound        = errors.New("scenario not found")
	ErrCorrupt         = errors.New("stored scenario list is corrupt")
)

// ScenarioStore keeps an ordered list of named scenarios under one key.
// Every mutation reads, modifies and writes back the whole list; with several
// writers the last one wins.
type ScenarioStore struct {
	kv     KV
	key    string
	logger Logger
}

// NewScenarioStore creates a store over kv using key.
func NewScenarioStore(kv KV, key string) *ScenarioStore {
	return &ScenarioStore{kv: kv, key: key, logger: nopLogger{}}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (s *ScenarioStore) SetLogger(l Logger) {
	if l == nil {
		s.logger = nopLogger{}
		return
	}
	s.logger = l
}

// Key returns the storage key of the list.
func (s *ScenarioStore) Key() string { return s.key }

func (s *ScenarioStore) load(ctx context.Context) ([]domain.Scenario, error) {
	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenarios: %w", err)
	}
	if !ok {
		return []domain.Scenario{}, nil
	}
	return decodeScenarios(data)
}

func (s *ScenarioStore) persist(ctx context.Context, list []domain.Scenario) error {
	data, err := encodeScenarios(list)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save scenarios: %w", err)
	}
	return nil
}

// List returns the scenarios in insertion order. A corrupt list yields an
// empty slice along with an ErrCorrupt error. Records saved without an ID get
// one and the list is written back.
func (s *ScenarioStore) List(ctx context.Context) ([]domain.Scenario, error) {
	list, err := s.load(ctx)
	if err != nil {
		return []domain.Scenario{}, err
	}
	migrated := 0
	for i := range list {
		if list[i].ID == "" {
			list[i].ID = idFunc()
			migrated++
		}
	}
	if migrated > 0 {
		s.logger.Infof("assigned ids to %d stored scenarios under %s", migrated, s.key)
		if err := s.persist(ctx, list); err != nil {
			return list, err
		}
	}
	return list, nil
}

// loadForWrite is List for mutations: a corrupt list is replaced instead of
// blocking every later save.
func (s *ScenarioStore) loadForWrite(ctx context.Context) ([]domain.Scenario, error) {
	list, err := s.List(ctx)
	if errors.Is(err, ErrCorrupt) {
		s.logger.Warnf("discarding corrupt scenario list under %s: %v", s.key, err)
		return []domain.Scenario{}, nil
	}
	return list, err
}

// Save appends a scenario and returns it with its assigned ID and creation
// time (epoch milliseconds). A blank name fails with ErrEmptyName.
func (s *ScenarioStore) Save(ctx context.Context, sc domain.Scenario) (domain.Scenario, error) {
	sc.Name = strings.TrimSpace(sc.Name)
	if sc.Name == "" {
		return domain.Scenario{}, ErrEmptyName
	}
	sc.Months = domain.ClampMonths(sc.Months)
	sc.ID = idFunc()
	sc.CreatedAt = nowFunc().UnixMilli()

	list, err := s.loadForWrite(ctx)
	if err != nil {
		return domain.Scenario{}, err
	}
	list = append(list, sc)
	if err := s.persist(ctx, list); err != nil {
		return domain.Scenario{}, err
	}
	s.logger.Debugf("saved scenario %q (%s) at position %d", sc.Name, sc.ID, len(list)-1)
	return sc, nil
}

// Remove deletes the scenario at index; later entries shift down by one.
func (s *ScenarioStore) Remove(ctx context.Context, index int) (domain.Scenario, error) {
	list, err := s.loadForWrite(ctx)
	if err != nil {
		return domain.Scenario{}, err
	}
	if index < 0 || index >= len(list) {
		return domain.Scenario{}, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(list))
	}
	removed := list[index]
	list = append(list[:index], list[index+1:]...)
	if err := s.persist(ctx, list); err != nil {
		return domain.Scenario{}, err
	}
	s.logger.Debugf("removed scenario %q at position %d", removed.Name, index)
	return removed, nil
}

// RemoveByID deletes the scenario with the given ID.
func (s *ScenarioStore) RemoveByID(ctx context.Context, id string) (domain.Scenario, error) {
	list, err := s.loadForWrite(ctx)
	if err != nil {
		return domain.Scenario{}, err
	}
	for i, sc := range list {
		if sc.ID == id {
			list = append(list[:i], list[i+1:]...)
			if err := s.persist(ctx, list); err != nil {
				return domain.Scenario{}, err
			}
			s.logger.Debugf("removed scenario %q (%s)", sc.Name, id)
			return sc, nil
		}
	}
	return domain.Scenario{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Get returns the scenario with the given ID.
func (s *ScenarioStore) Get(ctx context.Context, id string) (domain.Scenario, error) {
	list, err := s.List(ctx)
	if err != nil {
		return domain.Scenario{}, err
	}
	for _, sc := range list {
		if sc.ID == id {
			return sc, nil
		}
	}
	return domain.Scenario{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Resolve finds a scenario by ID, or by position when ref is a number.
func (s *ScenarioStore) Resolve(ctx context.Context, ref string) (domain.Scenario, int, error) {
	list, err := s.List(ctx)
	if err != nil {
		return domain.Scenario{}, -1, err
	}
	for i, sc := range list {
		if sc.ID == ref {
			return sc, i, nil
		}
	}
	if idx, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
		if idx < 0 || idx >= len(list) {
			return domain.Scenario{}, -1, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, idx, len(list))
		}
		return list[idx], idx, nil
	}
	return domain.Scenario{}, -1, fmt.Errorf("%w: %s", ErrNotFound, ref)
}
