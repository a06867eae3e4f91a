package export

// Column describes one field of a tabular export.
type Column struct {
	Key   string
	Label string
	// Weight sizes the column relative to its siblings in paged formats; zero means 1.
	Weight float64
}

// Dataset defines tabular export content.
type Dataset struct {
	Title   string
	Columns []Column
	Rows    []map[string]string
}

// Labels returns the header row.
func (d Dataset) Labels() []string {
	labels := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		labels[i] = col.Label
		if labels[i] == "" {
			labels[i] = col.Key
		}
	}
	return labels
}

// Record returns the values of row i in column order.
func (d Dataset) Record(i int) []string {
	record := make([]string, len(d.Columns))
	for j, col := range d.Columns {
		record[j] = d.Rows[i][col.Key]
	}
	return record
}
