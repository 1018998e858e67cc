// Package responses provides canned classification-service responses and a
// fluent builder for displayed results.
//
// # Basic Usage
//
//	r := responses.NewBuilder(t).
//		WithDescription("12x monitors").
//		WithSupplier("Dell").
//		WithRaw(responses.Structured).
//		Build()
//
// # Cases
//
// Cases lists every canned response together with whether it parses as
// structured data and the L1/L2/L3 values a reader should see:
//
//	for _, c := range responses.Cases {
//		t.Run(c.Name, func(t *testing.T) { ... })
//	}
package responses
