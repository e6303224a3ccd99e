package core

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ObjectRecord is one map object row from an exported snapshot.
type ObjectRecord struct {
	ID      string
	Name    string
	Type    string
	SubType int
	Owner   int
	X, Y, Z int
}

// HeroRecord is one hero row from an exported snapshot.
type HeroRecord struct {
	ID        string
	Name      string
	Owner     int
	Level     int
	Mana      int
	ManaLimit int
	X, Y, Z   int
	// Army is a comma-separated "creature:count" list.
	Army string
}

// Snapshot is the parsed content of an adventure-map HTML export.
type Snapshot struct {
	Objects []ObjectRecord
	Heroes  []HeroRecord
}

// Extractor provides methods for parsing exported snapshot HTML.
var Extractor = &extractor{}

type extractor struct{}

// Snapshot parses a map export. The export carries two tables, #objects and
// #heroes, one entity per row with the columns documented on the record
// types.
func (e *extractor) Snapshot(r io.Reader) (*Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot HTML: %w", err)
	}

	snapshot := &Snapshot{}

	doc.Find("table#objects tbody tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td").Map(func(_ int, s *goquery.Selection) string {
			return strings.TrimSpace(s.Text())
		})
		if len(cells) < 8 {
			err = fmt.Errorf("objects row %d has %d cells, want 8", i, len(cells))
			return false
		}
		rec := ObjectRecord{ID: cells[0], Name: cells[1], Type: cells[2]}
		if rec.SubType, err = atoiCell("objects", i, "subtype", cells[3]); err != nil {
			return false
		}
		if rec.Owner, err = atoiCell("objects", i, "owner", cells[4]); err != nil {
			return false
		}
		if rec.X, err = atoiCell("objects", i, "x", cells[5]); err != nil {
			return false
		}
		if rec.Y, err = atoiCell("objects", i, "y", cells[6]); err != nil {
			return false
		}
		if rec.Z, err = atoiCell("objects", i, "z", cells[7]); err != nil {
			return false
		}
		snapshot.Objects = append(snapshot.Objects, rec)
		return true
	})
	if err != nil {
		return nil, err
	}

	doc.Find("table#heroes tbody tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td").Map(func(_ int, s *goquery.Selection) string {
			return strings.TrimSpace(s.Text())
		})
		if len(cells) < 9 {
			err = fmt.Errorf("heroes row %d has %d cells, want 9", i, len(cells))
			return false
		}
		rec := HeroRecord{ID: cells[0], Name: cells[1]}
		if rec.Owner, err = atoiCell("heroes", i, "owner", cells[2]); err != nil {
			return false
		}
		if rec.Level, err = atoiCell("heroes", i, "level", cells[3]); err != nil {
			return false
		}
		if rec.Mana, err = atoiCell("heroes", i, "mana", cells[4]); err != nil {
			return false
		}
		if rec.ManaLimit, err = atoiCell("heroes", i, "mana_limit", cells[5]); err != nil {
			return false
		}
		if rec.X, err = atoiCell("heroes", i, "x", cells[6]); err != nil {
			return false
		}
		if rec.Y, err = atoiCell("heroes", i, "y", cells[7]); err != nil {
			return false
		}
		rec.Z = 0
		if len(cells) > 9 {
			if rec.Z, err = atoiCell("heroes", i, "z", cells[8]); err != nil {
				return false
			}
			rec.Army = cells[9]
		} else {
			rec.Army = cells[8]
		}
		snapshot.Heroes = append(snapshot.Heroes, rec)
		return true
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func atoiCell(table string, row int, column, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s row %d: bad %s value %q", table, row, column, value)
	}
	return n, nil
}

// ParseArmy splits a "creature:count,creature:count" army cell.
func ParseArmy(cell string) (map[string]int, error) {
	army := make(map[string]int)
	if strings.TrimSpace(cell) == "" {
		return army, nil
	}
	for _, part := range strings.Split(cell, ",") {
		creature, countStr, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("bad army entry %q", part)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return nil, fmt.Errorf("bad army count in %q", part)
		}
		army[strings.TrimSpace(creature)] = count
	}
	return army, nil
}
