// Package interact is the host-side event layer for click handles.
//
// Graph elements name their click handler with an opaque string
// (graph.Node.OnClick, graph.Edge.OnClick) so that graphs and draw trees
// stay plain data. A host binds handles to callbacks in a [Registry] and
// turns pointer positions into handles with [HitTest]:
//
//	reg := interact.NewRegistry()
//	reg.Register("open-api", func() { browser.Open(apiURL) })
//
//	if t, ok := interact.HitTest(canvas, x, y); ok {
//	    err := reg.Activate(ctx, t.Action)
//	}
//
// [Targets] lists every click target in draw order, which is what the
// inspect command shows.
package interact
