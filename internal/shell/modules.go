// Package shell owns the terminal frame: the module registry, per-session
// shell state and the store of live session workspaces.
package shell

// Module is a sidebar entry.
type Module struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Module keys.
const (
	ModuleStartupFeed   = "startupFeed"
	ModuleFounderSearch = "founderSearch"
	ModuleDealTracker   = "vcDealTracker"
	ModuleSavedLists    = "savedLists"
	ModuleTrends        = "trendDashboard"
	ModuleDigest        = "lpDigest"
	ModuleRouting       = "routing"
)

// Modules lists the sidebar in display order.
var Modules = []Module{
	{Key: ModuleStartupFeed, Name: "Startup Feed", Description: "Live startup signals"},
	{Key: ModuleFounderSearch, Name: "Founder Intel", Description: "Founder intelligence"},
	{Key: ModuleDealTracker, Name: "Deal Tracker", Description: "Recent funding rounds"},
	{Key: ModuleSavedLists, Name: "Watchlist", Description: "Saved items"},
	{Key: ModuleTrends, Name: "Trends", Description: "Market analytics"},
	{Key: ModuleDigest, Name: "LP Digest", Description: "Generate reports"},
	{Key: ModuleRouting, Name: "Routing", Description: "Build/Scout/Store"},
}

// LookupModule finds a module by key.
func LookupModule(key string) (Module, bool) {
	for _, m := range Modules {
		if m.Key == key {
			return m, true
		}
	}
	return Module{}, false
}

// Header is the title bar above the active pane.
type Header struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Placeholder is the pane shown for keys outside the registry.
type Placeholder struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// DefaultPlaceholder is the pane for unknown module keys.
var DefaultPlaceholder = Placeholder{
	Title:   "Select a module",
	Message: "Choose a module from the sidebar to get started",
}

// HeaderFor returns the header for key, falling back to "Dashboard".
func HeaderFor(key string) Header {
	if m, ok := LookupModule(key); ok {
		return Header{Title: m.Name, Subtitle: m.Description}
	}
	return Header{Title: "Dashboard", Subtitle: "Select a module"}
}
