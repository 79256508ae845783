package gridio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/A-D-Alamdari/single-agent-pathfinding/grid"
)

// MovingAI .map files look like:
//
//	type octile
//	height 3
//	width 4
//	map
//	....
//	.@@.
//	....
//
// '.' and 'G' are passable ground; every other terrain character ('@', 'O',
// 'T', 'S', 'W', ...) is treated as blocked. The format carries no start or
// goal; pair it with a .scen scenario file.

// ScenarioEntry is one record of a MovingAI .scen file.
type ScenarioEntry struct {
	Bucket        int
	MapName       string
	Width, Height int
	Start         grid.Coord
	Goal          grid.Coord
	OptimalLength float64
}

// DecodeMovingAI parses a MovingAI .map stream into a validated world
// without endpoints. Structural failures wrap ErrFormat.
func DecodeMovingAI(r io.Reader) (*grid.World, error) {
	sc := bufio.NewScanner(r)

	width, height, err := movingAIHeader(sc)
	if err != nil {
		return nil, err
	}

	var obstacles []grid.Coord
	for y := 0; y < height; y++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d map rows, got %d", ErrFormat, height, y)
		}
		row := sc.Text()
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrFormat, y, len(row), width)
		}
		for x, ch := range row {
			if ch != '.' && ch != 'G' {
				obstacles = append(obstacles, grid.Coord{X: x, Y: y})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return grid.NewWorld(width, height, grid.WithObstacles(obstacles...))
}

// movingAIHeader consumes the four header lines and returns the declared
// dimensions, which the caller enforces against the map body.
func movingAIHeader(sc *bufio.Scanner) (int, int, error) {
	var height, width int
	sawMap := false
	for i := 0; i < 4 && sc.Scan(); i++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			return 0, 0, fmt.Errorf("%w: blank header line", ErrFormat)
		}
		switch fields[0] {
		case "type":
			// terrain type label (commonly "octile"); not interpreted
		case "height", "width":
			if len(fields) != 2 {
				return 0, 0, fmt.Errorf("%w: header line %q", ErrFormat, sc.Text())
			}
			v, err := strconv.Atoi(fields[1])
			if err != nil || v <= 0 {
				return 0, 0, fmt.Errorf("%w: header line %q", ErrFormat, sc.Text())
			}
			if fields[0] == "height" {
				height = v
			} else {
				width = v
			}
		case "map":
			sawMap = true
		default:
			return 0, 0, fmt.Errorf("%w: unexpected header line %q", ErrFormat, sc.Text())
		}
	}
	if height == 0 || width == 0 || !sawMap {
		return 0, 0, fmt.Errorf("%w: incomplete header (need type, height, width, map)", ErrFormat)
	}

	return width, height, nil
}

// DecodeScenario parses a MovingAI .scen stream. The leading "version" line
// is optional; each record is 9 whitespace-separated columns:
// bucket, map name, width, height, start x/y, goal x/y, optimal length.
func DecodeScenario(r io.Reader) ([]ScenarioEntry, error) {
	sc := bufio.NewScanner(r)
	var entries []ScenarioEntry
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if line == 1 && strings.HasPrefix(text, "version") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 9 {
			return nil, fmt.Errorf("%w: scenario line %d has %d columns, want 9", ErrFormat, line, len(fields))
		}
		// Integer columns: bucket, width, height, start x/y, goal x/y.
		ints := make([]int, 9)
		for _, idx := range []int{0, 2, 3, 4, 5, 6, 7} {
			v, err := strconv.Atoi(fields[idx])
			if err != nil {
				return nil, fmt.Errorf("%w: scenario line %d column %d: %v", ErrFormat, line, idx+1, err)
			}
			ints[idx] = v
		}
		opt, err := strconv.ParseFloat(fields[8], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: scenario line %d optimal length: %v", ErrFormat, line, err)
		}
		entries = append(entries, ScenarioEntry{
			Bucket:        ints[0],
			MapName:       fields[1],
			Width:         ints[2],
			Height:        ints[3],
			Start:         grid.Coord{X: ints[4], Y: ints[5]},
			Goal:          grid.Coord{X: ints[6], Y: ints[7]},
			OptimalLength: opt,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return entries, nil
}
