package sand

import "encoding/json"

// Snapshot is a decoded copy of grid content used as migration seed.
type Snapshot struct {
	W, H  int
	Cells []Element
}

func (s Snapshot) at(x, y int) Element { return s.Cells[y*s.W+x] }

func snapshotOf(g *Grid) Snapshot {
	cells := make([]Element, len(g.Cells()))
	for i, v := range g.Cells() {
		cells[i] = Element(v)
	}
	return Snapshot{W: g.Width(), H: g.Height(), Cells: cells}
}

// EncodeSnapshot renders the grid as a JSON array of rows of element ids.
func EncodeSnapshot(g *Grid) string {
	rows := make([][]int, g.Height())
	cells := g.Cells()
	for y := range rows {
		row := make([]int, g.Width())
		for x := range row {
			row[x] = int(cells[y*g.Width()+x])
		}
		rows[y] = row
	}
	// Marshalling [][]int cannot fail.
	raw, _ := json.Marshal(rows)
	return string(raw)
}

// DecodeSnapshot parses a blob produced by EncodeSnapshot. It reports false
// for malformed JSON, an empty matrix, ragged rows or unknown element ids.
func DecodeSnapshot(blob string) (Snapshot, bool) {
	var rows [][]int
	if err := json.Unmarshal([]byte(blob), &rows); err != nil {
		return Snapshot{}, false
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Snapshot{}, false
	}
	w, h := len(rows[0]), len(rows)
	cells := make([]Element, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return Snapshot{}, false
		}
		for _, v := range row {
			if v < 0 || v >= NumElements {
				return Snapshot{}, false
			}
			cells = append(cells, Element(v))
		}
	}
	return Snapshot{W: w, H: h, Cells: cells}, true
}
