package service

import (
	"encoding/json"
	"os"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/config"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/domain"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/errors"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/normalize"
)

// LoadDirectory builds the delivery directory: PM rosters from the
// roster JSON file, delivery channels from config. A missing roster
// file yields empty rosters so read-only endpoints keep working.
func LoadDirectory(cfg *config.Config) (domain.Directory, error) {
	dir := domain.Directory{
		Rosters: map[domain.Region]domain.Roster{},
		Channels: map[domain.Region]string{
			domain.RegionUSA: cfg.Chat.ChannelUSA,
			domain.RegionUK:  cfg.Chat.ChannelUK,
		},
	}

	data, err := os.ReadFile(cfg.Rosters.File) //#nosec G304 -- roster path comes from config
	if err != nil {
		if os.IsNotExist(err) {
			return dir, nil
		}
		return dir, errors.Wrapf(err, errors.CodeInternal, "failed to read roster file %s", cfg.Rosters.File)
	}

	var raw map[string]map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return dir, errors.Wrapf(err, errors.CodeInternal, "failed to parse roster file %s", cfg.Rosters.File)
	}

	for regionName, roster := range raw {
		region, ok := domain.ParseRegion(regionName)
		if !ok {
			continue
		}
		normalized := make(domain.Roster, len(roster))
		for pm, email := range roster {
			// Roster keys share the Title-Case form the classifier uses.
			normalized[normalize.TitleCase(pm)] = email
		}
		dir.Rosters[region] = normalized
	}

	return dir, nil
}
