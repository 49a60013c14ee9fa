package qc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
)

// WriteStats writes the per cell stat table, tab separated with a header.
// Counts are truncated to whole numbers.
func WriteStats(w io.Writer, stats []CellStat) error {

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Cell\tCount\tGene\n")
	for _, s := range stats {
		fmt.Fprintf(bw, "%s\t%d\t%d\n", s.Barcode, int64(s.Count), s.Genes)
	}

	return bw.Flush()
}

// WriteMTXDir writes the matrix as a MatrixMarket trio under dir:
// matrix.mtx, features.tsv and barcodes.tsv.
func WriteMTXDir(dir string, m *CountMatrix) error {

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	if err := writeFile(path.Join(dir, "matrix.mtx"), func(w *bufio.Writer) error {
		nnz := 0
		for _, col := range m.Columns {
			nnz += len(col.Rows)
		}
		fmt.Fprintf(w, "%%%%MatrixMarket matrix coordinate real general\n%%\n")
		fmt.Fprintf(w, "%d %d %d\n", len(m.FeatureLines), len(m.Barcodes), nnz)
		for i, col := range m.Columns {
			for j, row := range col.Rows {
				fmt.Fprintf(w, "%d %d %s\n", row+1, i+1, strconv.FormatFloat(col.Values[j], 'g', -1, 64))
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := writeFile(path.Join(dir, "features.tsv"), func(w *bufio.Writer) error {
		for _, line := range m.FeatureLines {
			fmt.Fprintln(w, line)
		}
		return nil
	}); err != nil {
		return err
	}

	return writeFile(path.Join(dir, "barcodes.tsv"), func(w *bufio.Writer) error {
		for _, bc := range m.Barcodes {
			fmt.Fprintln(w, bc)
		}
		return nil
	})
}

// Run writes the stat table for every cell and the filtered matrix under
// directory, both named after outprefix. It returns how many cells passed
// the cutoffs.
func Run(m *CountMatrix, directory, outprefix string, countCutoff, geneCutoff int) (int, error) {

	if err := os.MkdirAll(directory, 0755); err != nil {
		return 0, fmt.Errorf("create %s: %w", directory, err)
	}
	prefix := path.Join(directory, outprefix)

	statf, err := os.Create(prefix + "_count_gene_stat.txt")
	if err != nil {
		return 0, err
	}
	if err := WriteStats(statf, m.Stats()); err != nil {
		statf.Close()
		return 0, err
	}
	if err := statf.Close(); err != nil {
		return 0, err
	}

	filtered := FilterCells(m, countCutoff, geneCutoff)
	if err := WriteMTXDir(prefix+"_filtered_gene_count", filtered); err != nil {
		return 0, err
	}

	return len(filtered.Barcodes), nil
}

func writeFile(name string, fill func(*bufio.Writer) error) error {

	f, err := os.Create(name)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := fill(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
