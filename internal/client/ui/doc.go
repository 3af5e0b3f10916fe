// Package ui models the shared navigation header: the parsed header.html
// fragment (Header), the two disclosure widgets it hosts (Disclosure) and
// the click dispatch that drives them (MenuController).
//
// Nothing here does I/O. Fetching the fragment and deciding what to show
// for which session lives in the services and page packages.
package ui
