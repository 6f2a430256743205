// Package results turns per-repetition outcomes into persisted artifacts:
// a columnar Arrow record serialized as delimited text, and an optional
// SQLite archive for querying across sweeps.
package results

import (
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/jstigall/legisim/internal/legislature"
)

// Column names match the original output table, with a leading 1-based
// repetition index.
var tableSchema = arrow.NewSchema([]arrow.Field{
	{Name: "Rep", Type: arrow.PrimitiveTypes.Int64},
	{Name: "Initial Value", Type: arrow.PrimitiveTypes.Float64},
	{Name: "Final Value", Type: arrow.PrimitiveTypes.Float64},
	{Name: "Number of Votes", Type: arrow.PrimitiveTypes.Int64},
	{Name: "Yeas", Type: arrow.PrimitiveTypes.Int64},
	{Name: "Majority Party Size", Type: arrow.PrimitiveTypes.Int64},
	{Name: "Distance between Medians", Type: arrow.PrimitiveTypes.Float64},
	{Name: "Majority St. Dev.", Type: arrow.PrimitiveTypes.Float64},
	{Name: "Majority Round Adjustment", Type: arrow.PrimitiveTypes.Float64},
	{Name: "Minority St. Dev.", Type: arrow.PrimitiveTypes.Float64},
	{Name: "Minority Round Adjustment", Type: arrow.PrimitiveTypes.Float64},
}, nil)

// Schema returns the Arrow schema of the outcome table.
func Schema() *arrow.Schema { return tableSchema }

// NewRecord builds a single Arrow record holding one row per outcome.
// The caller owns the record and must Release it.
func NewRecord(outcomes []legislature.Outcome) arrow.Record {
	b := array.NewRecordBuilder(memory.DefaultAllocator, tableSchema)
	defer b.Release()

	for _, o := range outcomes {
		b.Field(0).(*array.Int64Builder).Append(int64(o.Rep))
		b.Field(1).(*array.Float64Builder).Append(o.InitialValue)
		b.Field(2).(*array.Float64Builder).Append(o.FinalValue)
		b.Field(3).(*array.Int64Builder).Append(int64(o.Votes))
		b.Field(4).(*array.Int64Builder).Append(int64(o.Yeas))
		b.Field(5).(*array.Int64Builder).Append(int64(o.MajSize))
		b.Field(6).(*array.Float64Builder).Append(o.Distance)
		b.Field(7).(*array.Float64Builder).Append(o.MajSigma)
		b.Field(8).(*array.Float64Builder).Append(o.MajAdj)
		b.Field(9).(*array.Float64Builder).Append(o.MinSigma)
		b.Field(10).(*array.Float64Builder).Append(o.MinAdj)
	}

	return b.NewRecord()
}
