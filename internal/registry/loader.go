package registry

import (
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/grimveil/dicebound/internal/domain/affix"
	"github.com/grimveil/dicebound/internal/domain/skills"
	engerr "github.com/grimveil/dicebound/internal/errors"
)

// Catalog file names inside the content directory
const (
	affixesFile     = "affixes.yaml"
	diceAffixesFile = "dice_affixes.yaml"
	statusesFile    = "statuses.yaml"
	actionsFile     = "actions.yaml"
	scalingFile     = "scaling.yaml"
	skillsFile      = "skills.yaml"
)

type skillsDoc struct {
	TierThresholds []int          `yaml:"tier_thresholds"`
	Nodes          []*skills.Node `yaml:"nodes"`
}

// Load reads the content catalogs from a directory and builds the
// registry. The catalog files load concurrently; a missing optional file
// (actions, skills, scaling) is fine, a malformed one is not.
func Load(dir string) (*Registry, []affix.Warning, error) {
	cfg := &Config{}
	var skillCfg skillsDoc

	g := new(errgroup.Group)
	g.Go(func() error { return readYAML(filepath.Join(dir, affixesFile), &cfg.Affixes, true) })
	g.Go(func() error { return readYAML(filepath.Join(dir, diceAffixesFile), &cfg.DiceAffixes, true) })
	g.Go(func() error { return readYAML(filepath.Join(dir, statusesFile), &cfg.Statuses, true) })
	g.Go(func() error { return readYAML(filepath.Join(dir, actionsFile), &cfg.Actions, false) })
	g.Go(func() error { return readYAML(filepath.Join(dir, scalingFile), &cfg.Scaling, false) })
	g.Go(func() error { return readYAML(filepath.Join(dir, skillsFile), &skillCfg, false) })

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	cfg.SkillNodes = skillCfg.Nodes
	cfg.TierThresholds = skillCfg.TierThresholds

	return New(cfg)
}

func readYAML(path string, out any, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return engerr.Wrapf(err, "reading catalog %s", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return engerr.Validationf("parsing catalog %s: %v", path, err)
	}
	return nil
}
