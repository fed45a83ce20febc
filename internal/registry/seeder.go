package registry

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/sandboxfs/fileserver/internal/infrastructure/logging"
	"github.com/sandboxfs/fileserver/internal/shared/paths"
)

// Seed describes one pre-populated file: its registry triple plus the
// content written into the sandbox root.
type Seed struct {
	Name    string `yaml:"name"`
	Owner   string `yaml:"owner"`
	Perm    string `yaml:"perm"` // octal string, e.g. "0644"
	Content string `yaml:"content"`
}

type seedManifest struct {
	Seeds []Seed `yaml:"seeds"`
}

// DefaultSeeds returns the three fixed entries the server starts with.
func DefaultSeeds() []Seed {
	return []Seed{
		{Name: "readme.txt", Owner: "admin", Perm: "0644", Content: "Welcome to the file server!\n"},
		{Name: "secret.txt", Owner: "admin", Perm: "0600", Content: "SECRET: The password is hunter2\n"},
		{Name: "public.txt", Owner: "guest", Perm: "0666", Content: "This is a public file.\n"},
	}
}

// Seeder populates the registry and the sandbox directory at startup.
type Seeder struct {
	registry *Registry
	root     string
	logger   *logging.Logger
}

// NewSeeder creates a seeder for the given registry and sandbox root.
func NewSeeder(registry *Registry, root string, logger *logging.Logger) *Seeder {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Seeder{
		registry: registry,
		root:     root,
		logger:   logger,
	}
}

// LoadManifest reads seed triples from a YAML manifest file.
func LoadManifest(path string) ([]Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed manifest: %w", err)
	}

	var manifest seedManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse seed manifest: %w", err)
	}
	if len(manifest.Seeds) == 0 {
		return nil, fmt.Errorf("seed manifest %s contains no seeds", path)
	}
	return manifest.Seeds, nil
}

// Seed creates the sandbox root (ignoring "already exists"), registers
// each seed entry, and writes its content into the sandbox.
func (s *Seeder) Seed(seeds []Seed) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("failed to create sandbox root: %w", err)
	}

	var written int
	for _, seed := range seeds {
		perm, err := parsePerm(seed.Perm)
		if err != nil {
			return fmt.Errorf("seed %s: %w", seed.Name, err)
		}

		s.registry.MarkExists(seed.Name, seed.Owner, perm)

		path := paths.Resolve(s.root, seed.Name)
		if err := os.WriteFile(path, []byte(seed.Content), 0o644); err != nil {
			return fmt.Errorf("failed to write seed file %s: %w", seed.Name, err)
		}
		written++
	}

	s.logger.Info("Sandbox seeded",
		zap.String("root", s.root),
		zap.Int("entries", written),
	)
	return nil
}

// parsePerm converts an octal permission string like "0644" to its bits.
func parsePerm(s string) (int, error) {
	if s == "" {
		return 0o644, nil
	}
	perm, err := strconv.ParseInt(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid permission %q: %w", s, err)
	}
	return int(perm), nil
}
