// Package navigation describes the page chrome shared by the browser page
// and the terminal client: the portal sidebar and the tab strip.
package navigation

import "strings"

// Tab IDs
const (
	TabDocuments     = "documents"
	TabFolder        = "folder"
	TabDesignCompile = "design-compile"
	TabDesignSync    = "design-sync"
)

// Tab is one entry of the tab strip
type Tab struct {
	ID     string
	Label  string
	Active bool
}

// Tabs returns the tab strip with active marked. Only the documents tab has
// content; the others render an "under development" placeholder.
func Tabs(active string) []Tab {
	tabs := []Tab{
		{ID: TabDocuments, Label: "Documents"},
		{ID: TabFolder, Label: "Folder"},
		{ID: TabDesignCompile, Label: "Design Compile"},
		{ID: TabDesignSync, Label: "Design Sync"},
	}
	for i := range tabs {
		tabs[i].Active = tabs[i].ID == active
	}
	return tabs
}

// Item is one sidebar link into the surrounding portal
type Item struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

// Items returns the sidebar links rooted at the portal base URL.
// "Design" is the active section.
func Items(portalBaseURL string) []Item {
	base := strings.TrimSuffix(portalBaseURL, "/")
	return []Item{
		{ID: "dashboard", Label: "Dashboard", Href: base + "/Overview/Index"},
		{ID: "design", Label: "Design", Href: base + "/FormDesign/Index", Active: true},
		{ID: "rules-manager", Label: "Rules Manager", Href: base + "/RulesManager/Index"},
		{ID: "extended-hangfire", Label: "Extended Hangfire", Href: base + "/ExtendedHangfire/Index"},
		{ID: "configuration", Label: "Configuration", Href: base + "/AppSettings/AppSettings"},
	}
}

// Footer is the copyright line shown at the bottom of every page
const Footer = "© Copyright 2025 Simplify Healthcare Technology, All Rights Reserved."
