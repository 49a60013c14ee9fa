package qc

// CellStat is the per cell summary written to the stat table.
type CellStat struct {
	Barcode string
	Count   float64
	Genes   int
}

// Stats sums every cell: total counts and the number of detected genes.
func (m *CountMatrix) Stats() []CellStat {

	stats := make([]CellStat, len(m.Columns))
	for i, col := range m.Columns {
		total := 0.0
		for _, v := range col.Values {
			total += v
		}
		stats[i] = CellStat{
			Barcode: m.Barcodes[i],
			Count:   total,
			Genes:   len(col.Rows),
		}
	}

	return stats
}

// FilterCells keeps the cells passing both cutoffs. The comparison is
// strictly greater, a cell sitting exactly on a cutoff is dropped. Genes
// are never filtered.
func FilterCells(m *CountMatrix, countCutoff, geneCutoff int) *CountMatrix {

	out := &CountMatrix{FeatureLines: m.FeatureLines}
	for i, stat := range m.Stats() {
		if stat.Count > float64(countCutoff) && stat.Genes > geneCutoff {
			out.Barcodes = append(out.Barcodes, m.Barcodes[i])
			out.Columns = append(out.Columns, m.Columns[i])
		}
	}

	return out
}
