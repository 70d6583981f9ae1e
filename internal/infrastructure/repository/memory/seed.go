package memory

import (
	"bytes"
	"embed"
	"path"
	"sort"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-portal/internal/domain/competition"
)

//go:embed data/competitions/*.json
var competitionFiles embed.FS

const competitionDir = "data/competitions"

type competitionRecord struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Editions []editionRecord `json:"editions"`
}

type editionRecord struct {
	Year         editionYear `json:"year"`
	Winner       string      `json:"winner"`
	WinnerLogo   string      `json:"winnerLogo"`
	RunnerUp     string      `json:"runnerUp"`
	RunnerUpLogo string      `json:"runnerUpLogo"`
	Host         string      `json:"host"`
	FinalScore   string      `json:"finalScore"`
}

// editionYear accepts 2018 as well as "1992-93". Season labels keep their
// leading year in Number.
type editionYear competition.Year

func (y *editionYear) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var label string
		if err := sonic.Unmarshal(data, &label); err != nil {
			return crerr.Wrap(err, "decode edition year label")
		}
		label = strings.TrimSpace(label)
		if label == "" {
			return crerr.New("edition year label is empty")
		}
		y.Season = label
		y.Number = leadingYear(label)
		return nil
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return crerr.Wrapf(err, "decode edition year %q", string(data))
	}
	y.Number = n
	y.Season = ""
	return nil
}

func leadingYear(label string) int {
	end := 0
	for end < len(label) && label[end] >= '0' && label[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(label[:end])
	return n
}

// SeedCompetitions decodes the bundled competition histories, ordered by id.
func SeedCompetitions() ([]competition.History, error) {
	entries, err := competitionFiles.ReadDir(competitionDir)
	if err != nil {
		return nil, crerr.Wrap(err, "read bundled competitions")
	}

	out := make([]competition.History, 0, len(entries))
	seen := make(map[int64]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		raw, err := competitionFiles.ReadFile(path.Join(competitionDir, entry.Name()))
		if err != nil {
			return nil, crerr.Wrapf(err, "read %s", entry.Name())
		}
		history, err := decodeCompetition(raw)
		if err != nil {
			return nil, crerr.Wrapf(err, "decode %s", entry.Name())
		}
		if other, dup := seen[history.ID]; dup {
			return nil, crerr.Newf("competition id=%d declared by %s and %s", history.ID, other, entry.Name())
		}
		seen[history.ID] = entry.Name()
		out = append(out, history)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func decodeCompetition(raw []byte) (competition.History, error) {
	var record competitionRecord
	if err := sonic.Unmarshal(raw, &record); err != nil {
		return competition.History{}, err
	}
	if record.ID <= 0 {
		return competition.History{}, crerr.New("competition id must be positive")
	}
	if strings.TrimSpace(record.Name) == "" {
		return competition.History{}, crerr.Newf("competition id=%d has no name", record.ID)
	}

	kind := competition.Type(record.Type)
	if kind != competition.TypeClubs && kind != competition.TypeNational {
		return competition.History{}, crerr.Newf("competition id=%d has unknown type %q", record.ID, record.Type)
	}

	editions := make([]competition.Edition, 0, len(record.Editions))
	for i, e := range record.Editions {
		if e.Winner == "" || e.RunnerUp == "" {
			return competition.History{}, crerr.Newf("competition id=%d edition #%d is missing a finalist", record.ID, i)
		}
		editions = append(editions, competition.Edition{
			Year:         competition.Year(e.Year),
			Winner:       e.Winner,
			WinnerLogo:   e.WinnerLogo,
			RunnerUp:     e.RunnerUp,
			RunnerUpLogo: e.RunnerUpLogo,
			Host:         e.Host,
			FinalScore:   e.FinalScore,
		})
	}

	return competition.History{
		ID:       record.ID,
		Name:     record.Name,
		Type:     kind,
		Editions: editions,
	}, nil
}
