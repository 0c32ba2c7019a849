// Package view builds the presentation models for the catalog and detail
// pages. The models are plain data; the web and tui packages render them.
//
// A detail page is always resolved against a State, the per-viewer tab and
// client selection. States are values owned by one viewer and are never
// shared.
package view
