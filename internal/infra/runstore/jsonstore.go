package runstore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aalvaropc/seek/internal/domain"
	"github.com/aalvaropc/seek/internal/ports"
)

const defaultRunsDir = "runs"
const indexFile = "index.jsonl"

type JSONStore struct {
	rootDir     string
	runsDirName string
	maxValues   int
	writeIndex  bool
	now         func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Store.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		maxValues:   cfg.Store.MaxStoredValues,
		writeIndex:  cfg.Store.Index,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ ports.ArtifactStore = (*JSONStore)(nil)
	_ ports.RunCatalog    = (*JSONStore)(nil)
)

func (s *JSONStore) dir() string {
	return filepath.Join(s.rootDir, s.runsDirName)
}

func (s *JSONStore) SaveRun(run domain.RunArtifact) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := run.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := run
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}
	toSave = s.capSequence(toSave)

	base := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slugFor(run.Result.Target))
	id, path := uniqueName(dir, base)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filepath.Base(path), toSave)
	}

	return id, nil
}

// capSequence returns a copy whose sequence fits maxValues (does NOT mutate the input).
func (s *JSONStore) capSequence(run domain.RunArtifact) domain.RunArtifact {
	out := run
	if s.maxValues > 0 && len(run.Sequence) > s.maxValues {
		out.Sequence = run.Sequence[:s.maxValues].Clone()
		out.Truncated = true
		return out
	}
	out.Sequence = run.Sequence.Clone()
	return out
}

func uniqueName(dir, base string) (id, path string) {
	id = base
	path = filepath.Join(dir, id+".json")
	for n := 2; fileExists(path); n++ {
		id = fmt.Sprintf("%s_%d", base, n)
		path = filepath.Join(dir, id+".json")
	}
	return id, path
}

func (s *JSONStore) appendIndex(dir, id, filename string, run domain.RunArtifact) error {
	line, err := json.Marshal(domain.RunRef{
		ID:        id,
		File:      filename,
		Target:    run.Result.Target,
		Found:     run.Result.Found,
		Length:    run.Length,
		StartedAt: run.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, indexFile)
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// ListRuns returns indexed runs, newest first. Malformed index lines are skipped.
func (s *JSONStore) ListRuns() ([]domain.RunRef, error) {
	path := filepath.Join(s.dir(), indexFile)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.RunRef{}, nil
		}
		return nil, &domain.OpError{
			Op:   "runstore.list",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	refs := []domain.RunRef{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var ref domain.RunRef
		if err := json.Unmarshal([]byte(line), &ref); err != nil || ref.ID == "" {
			continue
		}
		refs = append(refs, ref)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "runstore.list",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].StartedAt.After(refs[j].StartedAt)
	})
	return refs, nil
}

// LoadRun returns the raw JSON document of a stored run.
func (s *JSONStore) LoadRun(id string) ([]byte, error) {
	id = strings.TrimSuffix(strings.TrimSpace(id), ".json")
	if id == "" || strings.ContainsAny(id, `/\`) {
		return nil, domain.InvalidInput("runstore.load", "invalid run id %q", id)
	}

	path := filepath.Join(s.dir(), id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, os.ErrNotExist) {
			kind = domain.KindNotFound
			err = fmt.Errorf("run %q: %w", id, domain.ErrNotFound)
		}
		return nil, &domain.OpError{
			Op:   "runstore.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return b, nil
}

func slugFor(target int) string {
	if target < 0 {
		return "target-neg" + strings.TrimPrefix(strconv.Itoa(target), "-")
	}
	return fmt.Sprintf("target-%d", target)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
