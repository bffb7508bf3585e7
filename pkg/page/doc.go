// Package page renders a bound component tree into a complete HTML document.
// The shell is a pongo2 template; theme tokens become CSS custom properties
// and description markup is sanitised with bluemonday's UGC policy.
package page
