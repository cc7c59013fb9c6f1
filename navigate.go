package tagball

import (
	"fmt"
	"io"
	"strings"
)

// Navigator receives the link of a clicked item. Opening the link is the
// navigator's job; external links are meant to open in a new context
// (window, tab), all others in place.
type Navigator interface {
	Navigate(link string, external bool) error
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(link string, external bool) error

// Navigate calls f(link, external).
func (f NavigatorFunc) Navigate(link string, external bool) error {
	return f(link, external)
}

// IsExternal reports whether link points outside the current site.
func IsExternal(link string) bool {
	return strings.HasPrefix(link, "http")
}

// LogNavigator writes each navigation request as a line to W.
type LogNavigator struct {
	W io.Writer
}

// Navigate implements Navigator.
func (n LogNavigator) Navigate(link string, external bool) error {
	target := "_self"
	if external {
		target = "_blank"
	}
	if _, err := fmt.Fprintf(n.W, "navigate %s %s\n", target, link); err != nil {
		return fmt.Errorf("log navigation: %w", err)
	}
	return nil
}
