// Package kpi computes the revenue, inventory and logistics KPIs over a
// cleaned record table.
//
// Every function is pure. Values are rounded only when written to the
// output structure. An empty table yields the zero structure with Empty set;
// a non-empty table lacking a required column yields a configuration error
// naming the column.
package kpi
