// Package cleaning turns a raw record table into a cleaned table whose
// columns are addressed by the canonical names declared here.
package cleaning
