// pkg/cleaner/anomaly.go
package cleaner

import (
	"math"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/rawtoready/cleanse/pkg/dataset"
)

// AnomalyReport is the outcome of outlier detection: the flagged rows as
// a sub-dataset plus the distinct flagged-row count
type AnomalyReport struct {
	// Anomalies contains one row per flagged input row, annotated with
	// the triggering column name(s) and value(s)
	Anomalies *dataset.Dataset
	// RowCount is the number of distinct rows flagged
	RowCount int
}

// DetectAnomalies flags numeric outliers by z-score. For every numeric
// column with nonzero sample standard deviation, each cell's deviation
// from the column mean is standardized; rows where |z| exceeds the
// threshold are flagged. Zero-variance columns are skipped outright so
// there is no division by zero. A dataset with no numeric columns or no
// outliers yields an empty report, not an error.
func (c *DataCleaner) DetectAnomalies(ds *dataset.Dataset, threshold float64) (*AnomalyReport, error) {
	rows := ds.RowCount()

	// flagged maps row index -> triggering columns and values, filled
	// in column order then row order
	flaggedCols := make(map[int][]string)
	flaggedVals := make(map[int][]string)
	var order []int

	for _, col := range ds.Columns {
		if col.Kind() != dataset.KindNumeric {
			continue
		}

		nums := numericValues(&col)
		if len(nums) < 2 {
			continue
		}
		mean := stat.Mean(nums, nil)
		stddev := stat.StdDev(nums, nil)
		if stddev == 0 || math.IsNaN(stddev) {
			continue
		}

		for i, v := range col.Values {
			if v.Kind != dataset.KindNumber {
				continue
			}
			z := (v.Num - mean) / stddev
			if math.Abs(z) <= threshold {
				continue
			}
			if _, seen := flaggedCols[i]; !seen {
				order = append(order, i)
			}
			flaggedCols[i] = append(flaggedCols[i], col.Name)
			flaggedVals[i] = append(flaggedVals[i], v.Text())
		}
	}

	report := &AnomalyReport{
		Anomalies: &dataset.Dataset{},
		RowCount:  len(order),
	}
	if len(order) == 0 {
		c.logger.Debug("No anomalies detected",
			zap.Float64("threshold", threshold),
			zap.Int("rows", rows))
		return report, nil
	}

	sub := ds.SelectRows(order)
	colNames := make([]dataset.Value, len(order))
	colValues := make([]dataset.Value, len(order))
	for i, rowIdx := range order {
		colNames[i] = dataset.String(strings.Join(flaggedCols[rowIdx], ","))
		colValues[i] = dataset.String(strings.Join(flaggedVals[rowIdx], ","))
	}
	sub.Columns = append(sub.Columns,
		dataset.Column{Name: "anomaly_column", Values: colNames},
		dataset.Column{Name: "anomaly_value", Values: colValues},
	)
	report.Anomalies = sub

	c.logger.Debug("Detected anomalous rows",
		zap.Float64("threshold", threshold),
		zap.Int("flaggedRows", report.RowCount))

	return report, nil
}
