// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import "github.com/mgorsk1/great-expectations/pkg/suite"

// ColumnBucket holds the expectations targeting one column, in suite order.
type ColumnBucket struct {
	Column       string
	Expectations []*suite.Expectation
}

// Grouped is the result of partitioning a suite's expectations. Table is
// always non-nil, even when every expectation targets a column. Columns
// appear in the order each column name is first seen.
type Grouped struct {
	Table   []*suite.Expectation
	Columns []*ColumnBucket
}

// GroupByColumn partitions expectations into a table-scope bucket and
// per-column buckets in a single order-preserving pass. No sorting happens
// at any point.
func GroupByColumn(expectations []*suite.Expectation) *Grouped {
	g := &Grouped{Table: []*suite.Expectation{}}
	index := make(map[string]*ColumnBucket)
	for _, exp := range expectations {
		if !exp.Kwargs.Has("column") {
			g.Table = append(g.Table, exp)
			continue
		}
		col := exp.Column()
		bucket, ok := index[col]
		if !ok {
			bucket = &ColumnBucket{Column: col}
			index[col] = bucket
			g.Columns = append(g.Columns, bucket)
		}
		bucket.Expectations = append(bucket.Expectations, exp)
	}
	return g
}
