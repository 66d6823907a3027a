// Package shared holds code used across packages that belongs to no single
// layer.
//
// The testutil subpackage provides the sample supply chain sheet, a static
// data source that counts fetches, and slog capture helpers:
//
//	func TestSomething(t *testing.T) {
//	    src := testutil.NewStaticSource()
//	    logger, logs := testutil.NewTestLogger(t)
//	    svc := services.NewSupplyChainService(src, nil, logger)
//	    ...
//	}
package shared
