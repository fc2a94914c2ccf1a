// Package compose turns a source photo and a parameter set into the final
// canvas.
//
// Plan computes every rectangle of a composition without touching pixels.
// Engine.Compose executes the same plan: it builds the background, pastes
// the contain-fitted foreground at the center and, when configured, places
// the branding overlay.
//
//	engine := compose.NewEngine(logo.NewResolver("assets/logos", nil, true))
//	out := engine.Compose(src, params)
package compose
