package parser

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"sort"

	demoinfocs "github.com/markus-wa/demoinfocs-golang/v4/pkg/demoinfocs"
	common "github.com/markus-wa/demoinfocs-golang/v4/pkg/demoinfocs/common"
	"github.com/markus-wa/demoinfocs-golang/v4/pkg/demoinfocs/events"

	"github.com/Jearnest94/NadeStacked/internal/model"
)

// ParseDemo parses the demo at path and returns the round and tick tables
// the sampling pipeline works from.
func ParseDemo(path string) (*model.RawDemo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open demo: %w", err)
	}
	defer f.Close()

	// Hash file for idempotency key.
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("hash demo: %w", err)
	}
	demoHash := fmt.Sprintf("%x", h.Sum(nil))

	// Seek back to start for the parser.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek demo: %w", err)
	}

	p := demoinfocs.NewParser(f)
	defer p.Close()

	raw := &model.RawDemo{DemoHash: demoHash}

	var (
		roundNumber    int
		roundStartTick int
		freezeEndTick  int
	)

	// RoundStart: record start tick, bump round counter.
	p.RegisterEventHandler(func(e events.RoundStart) {
		if p.GameState().IsWarmupPeriod() {
			return
		}
		roundNumber++
		roundStartTick = p.GameState().IngameTick()
		freezeEndTick = 0 // set by RoundFreezetimeEnd
	})

	// RoundFreezetimeEnd: the tick treated as the playable round start.
	p.RegisterEventHandler(func(e events.RoundFreezetimeEnd) {
		if roundNumber == 0 {
			return
		}
		freezeEndTick = p.GameState().IngameTick()
	})

	// RoundEnd: close out the round record. The freeze-end boundary stays
	// unset when the event never fired, so downstream code can fall back to
	// the start tick.
	p.RegisterEventHandler(func(e events.RoundEnd) {
		if roundNumber == 0 {
			return
		}
		start := roundStartTick
		end := p.GameState().IngameTick()
		rec := model.RoundRecord{Num: roundNumber, Start: &start, End: &end}
		if freezeEndTick != 0 {
			fe := freezeEndTick
			rec.FreezeEnd = &fe
		}
		raw.Rounds = append(raw.Rounds, rec)
	})

	// RoundEndOfficial arrives after RoundEnd; attach it to the last round.
	p.RegisterEventHandler(func(e events.RoundEndOfficial) {
		if len(raw.Rounds) == 0 {
			return
		}
		official := p.GameState().IngameTick()
		raw.Rounds[len(raw.Rounds)-1].EndOfficial = &official
	})

	// FrameDone: snapshot every playing participant's position. This is the
	// tick table the resolver indexes; exact-tick lookups need every frame.
	p.RegisterEventHandler(func(e events.FrameDone) {
		if roundNumber == 0 || p.GameState().IsWarmupPeriod() {
			return
		}
		tick := p.GameState().IngameTick()
		for _, pl := range p.GameState().Participants().Playing() {
			if pl == nil || pl.SteamID64 == 0 || pl.Name == "" {
				continue
			}
			side := sideFromTeam(pl.Team)
			if side == "" {
				continue
			}
			pos := pl.Position()
			x, y, z := pos.X, pos.Y, pos.Z
			raw.Ticks = append(raw.Ticks, model.TickRecord{
				RoundNum: roundNumber,
				Tick:     tick,
				Name:     pl.Name,
				Side:     side,
				X:        &x, Y: &y, Z: &z,
			})
		}
	})

	if err := p.ParseToEnd(); err != nil {
		return nil, fmt.Errorf("parse demo: %w", err)
	}

	raw.MapName = p.Header().MapName
	if raw.MapName == "" {
		raw.MapName = "de_unknown"
	}
	raw.Tickrate = p.TickRate()

	return raw, nil
}

// PlayerNames returns the sorted unique player names found in the tick table.
func PlayerNames(ticks []model.TickRecord) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, t := range ticks {
		if t.Name == "" {
			continue
		}
		if _, ok := seen[t.Name]; !ok {
			seen[t.Name] = struct{}{}
			names = append(names, t.Name)
		}
	}
	sort.Strings(names)
	return names
}

func sideFromTeam(t common.Team) string {
	switch t {
	case common.TeamTerrorists:
		return "t"
	case common.TeamCounterTerrorists:
		return "ct"
	default:
		return ""
	}
}
