package app

import "fmt"

// Page is the screen currently shown.
type Page int

const (
	PageStart Page = iota
	PageInfo
	PageMain
)

func (p Page) String() string {
	switch p {
	case PageStart:
		return "start"
	case PageInfo:
		return "info"
	case PageMain:
		return "main"
	default:
		return fmt.Sprintf("Page(%d)", int(p))
	}
}

// Advance returns the page after p. The main page is last.
func (p Page) Advance() Page {
	switch p {
	case PageStart:
		return PageInfo
	case PageInfo:
		return PageMain
	}
	return p
}

// Back returns the page before p. Only the info page has one.
func (p Page) Back() Page {
	if p == PageInfo {
		return PageStart
	}
	return p
}
