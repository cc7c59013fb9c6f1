// Package tagball renders a set of labeled links as a rotating sphere of
// text, steered by the pointer.
//
// Items are spread evenly over a unit sphere along a spiral ([Layout]).
// Every frame each item is rotated about an axis in the screen plane whose
// direction and speed come from the pointer's offset from the sphere
// center ([PointerTracker]), projected orthographically and drawn as a
// label whose opacity follows its depth. Hovering a front-facing label
// freezes the sphere; clicking it hands the label's link to a [Navigator].
//
// # Quick start
//
// The simplest way to get started is [Run], which opens an Ebitengine
// window:
//
//	cfg := tagball.DefaultConfig()
//	cfg.Tags = []tagball.Tag{{Name: "Go", Href: "https://go.dev"}}
//	err := tagball.Run(cfg, tagball.RunConfig{Title: "Tags", Width: 480}, nil)
//
// [RunTerminal] shows the same sphere in a terminal through tcell.
//
// # Building blocks
//
// [New] wires the pieces together for any [Canvas]: it lays out the tags,
// creates a [Scene], subscribes the scene to a [PointerTracker] and makes
// every item's hover pause all items. Hosts then call [Cloud.PointerMove],
// [Cloud.Click] and [Cloud.Tick] from a single goroutine.
//
// Components talk through [Observable], a small named-event bus. The
// tracker publishes [EventPolar] and [EventCartesian]; items publish
// [EventHover] and listen for [EventPause].
//
// Configuration can be loaded from YAML with [LoadConfig].
package tagball
