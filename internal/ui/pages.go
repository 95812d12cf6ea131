package ui

import "github.com/five82/orgmine/internal/state"

// Page is one screen of the dashboard.
type Page int

const (
	PageDashboard Page = iota
	PageTables
	PageOrganization
	PageRoles
	PageUsers
	PagePerformance
	PageAdvanced
	PageBPMN
	PageSettings
)

// Pages lists every page in sidebar order.
var Pages = []Page{
	PageDashboard,
	PageTables,
	PageOrganization,
	PageRoles,
	PageUsers,
	PagePerformance,
	PageAdvanced,
	PageBPMN,
	PageSettings,
}

// Next returns the page after p, wrapping.
func (p Page) Next() Page {
	return Pages[(int(p)+1)%len(Pages)]
}

// Prev returns the page before p, wrapping.
func (p Page) Prev() Page {
	return Pages[(int(p)+len(Pages)-1)%len(Pages)]
}

// TitleKey is the message key of the page's sidebar label.
func (p Page) TitleKey() string {
	switch p {
	case PageTables:
		return "nav.tables"
	case PageOrganization:
		return "nav.organization"
	case PageRoles:
		return "nav.roles"
	case PageUsers:
		return "nav.users"
	case PagePerformance:
		return "nav.performance"
	case PageAdvanced:
		return "nav.advanced"
	case PageBPMN:
		return "nav.bpmn"
	case PageSettings:
		return "nav.settings"
	default:
		return "nav.dashboard"
	}
}

// Section returns the data section a page shows, if it has one.
func (p Page) Section() (state.Section, bool) {
	switch p {
	case PageOrganization:
		return state.SectionOrganization, true
	case PageRoles:
		return state.SectionRoles, true
	case PageUsers:
		return state.SectionUsers, true
	case PagePerformance:
		return state.SectionPerformance, true
	case PageAdvanced:
		return state.SectionAdvanced, true
	case PageBPMN:
		return state.SectionBPMN, true
	default:
		return 0, false
	}
}
