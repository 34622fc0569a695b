package extract

import (
	"sort"

	"github.com/OpenMPDK/nvme-lint/poppler"
)

const (
	// rowTolerance is the vertical slack for elements sharing a table row;
	// colTolerance is the horizontal slack for left edges sharing a column.
	rowTolerance = 3
	colTolerance = 10

	// A column anchor must repeat across rows; a left edge seen once is a
	// wrapped fragment, not a column.
	minColumnHits = 2

	minGridRows = 2
	minGridCols = 2
)

// Grid reconstructs the cell matrix of one table region. Text elements
// are banded into rows by vertical position and into columns by
// clustering left edges; elements landing in the same cell are joined in
// reading order. Regions too small to be a table yield nil.
func Grid(texts []poppler.Text) [][]string {
	if len(texts) == 0 {
		return nil
	}

	bands := clusterRows(texts)
	cols := clusterColumns(texts)
	if len(bands) < minGridRows || len(cols) < minGridCols {
		return nil
	}

	grid := make([][]string, len(bands))
	for i, band := range bands {
		grid[i] = make([]string, len(cols))
		for _, t := range band {
			c := columnIndex(cols, t.Left)
			if grid[i][c] != "" {
				grid[i][c] += " "
			}
			grid[i][c] += t.Value
		}
	}
	return grid
}

// clusterRows bands elements by vertical position, top to bottom, each
// band sorted left to right.
func clusterRows(texts []poppler.Text) [][]poppler.Text {
	sorted := make([]poppler.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Top < sorted[j].Top
	})

	var bands [][]poppler.Text
	for _, t := range sorted {
		if len(bands) == 0 {
			bands = append(bands, []poppler.Text{t})
			continue
		}
		last := bands[len(bands)-1]
		if t.Top-last[len(last)-1].Top > rowTolerance {
			bands = append(bands, []poppler.Text{t})
		} else {
			bands[len(bands)-1] = append(last, t)
		}
	}

	for _, band := range bands {
		sort.SliceStable(band, func(i, j int) bool {
			return band[i].Left < band[j].Left
		})
	}
	return bands
}

// clusterColumns clusters the left edges of all elements into column
// positions, averaging edges that fall within the tolerance of the
// running cluster center. Clusters hit by a single element are discarded
// unless nothing else survives; their text later folds into the nearest
// real column.
func clusterColumns(texts []poppler.Text) []int {
	lefts := make([]int, 0, len(texts))
	for _, t := range texts {
		lefts = append(lefts, t.Left)
	}
	sort.Ints(lefts)

	type cluster struct {
		center int
		hits   int
	}
	var clusters []cluster
	for _, x := range lefts {
		if len(clusters) == 0 || x-clusters[len(clusters)-1].center > colTolerance {
			clusters = append(clusters, cluster{center: x, hits: 1})
			continue
		}
		last := &clusters[len(clusters)-1]
		last.center = (last.center + x) / 2
		last.hits++
	}

	var cols []int
	for _, c := range clusters {
		if c.hits >= minColumnHits {
			cols = append(cols, c.center)
		}
	}
	if len(cols) == 0 {
		for _, c := range clusters {
			cols = append(cols, c.center)
		}
	}
	return cols
}

// columnIndex returns the column whose center sits nearest the given left
// edge.
func columnIndex(cols []int, left int) int {
	best := 0
	for i := 1; i < len(cols); i++ {
		if abs(left-cols[i]) < abs(left-cols[best]) {
			best = i
		}
	}
	return best
}
