// Package printer turns a range of X-Ray numbers into a printable HTML page
// of patient cards and hands that page to a [Surface] for display.
package printer
